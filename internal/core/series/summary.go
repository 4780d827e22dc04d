package series

import (
	"math"

	"golang-stock-dashboard/internal/entity"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the observed segment of a chart series.
type Summary struct {
	Open          float64 `json:"open"`
	Close         float64 `json:"close"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	Mean          float64 `json:"mean"`
	Volatility    float64 `json:"volatility"`
	PeriodChange  float64 `json:"periodChangePercent"`
	ForecastClose float64 `json:"forecastClose,omitempty"`
}

// Summarize computes descriptive statistics over the observed points.
// Volatility is the standard deviation of day-over-day returns, in percent.
func Summarize(points []entity.ChartPoint) Summary {
	var (
		observed []float64
		summary  Summary
	)
	for _, p := range points {
		if p.IsPrediction {
			if p.Prediction != nil {
				summary.ForecastClose = *p.Prediction
			}
			continue
		}
		if p.Price != nil {
			observed = append(observed, *p.Price)
		}
	}
	if len(observed) == 0 {
		return summary
	}

	summary.Open = observed[0]
	summary.Close = observed[len(observed)-1]
	summary.Min = floats.Min(observed)
	summary.Max = floats.Max(observed)
	summary.Mean = round2(stat.Mean(observed, nil))
	summary.PeriodChange = round2((summary.Close - summary.Open) / summary.Open * 100)

	if len(observed) > 2 {
		returns := make([]float64, len(observed)-1)
		for i := 1; i < len(observed); i++ {
			returns[i-1] = (observed[i] - observed[i-1]) / observed[i-1]
		}
		summary.Volatility = round2(stat.StdDev(returns, nil) * 100)
	}

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
