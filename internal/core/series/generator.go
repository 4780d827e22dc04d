package series

import (
	"fmt"
	"math"
	"time"

	"golang-stock-dashboard/internal/core"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/utils"
)

const (
	DefaultPastDays      = 30
	DefaultFutureDays    = 7
	DefaultPriceNoise    = 0.02
	DefaultScaleFloor    = 0.95
	DefaultForecastNoise = 1.0
	DefaultDrift         = 0.05

	// minPrice keeps generated prices strictly positive.
	minPrice = 0.0001
)

// Options tunes the generator. Zero noise/scale/drift fields take the
// package defaults; horizons are used as given.
type Options struct {
	PastDays      int
	FutureDays    int
	Today         time.Time
	PriceNoise    float64
	ScaleFloor    float64
	ForecastNoise float64
	DefaultDrift  float64
}

// DefaultOptions returns the 30 day history / 7 day forecast layout.
func DefaultOptions() Options {
	return Options{
		PastDays:      DefaultPastDays,
		FutureDays:    DefaultFutureDays,
		PriceNoise:    DefaultPriceNoise,
		ScaleFloor:    DefaultScaleFloor,
		ForecastNoise: DefaultForecastNoise,
		DefaultDrift:  DefaultDrift,
	}
}

func (o Options) withDefaults() Options {
	if o.PriceNoise <= 0 {
		o.PriceNoise = DefaultPriceNoise
	}
	if o.ScaleFloor <= 0 || o.ScaleFloor > 1 {
		o.ScaleFloor = DefaultScaleFloor
	}
	if o.ForecastNoise <= 0 {
		o.ForecastNoise = DefaultForecastNoise
	}
	if o.DefaultDrift == 0 {
		o.DefaultDrift = DefaultDrift
	}
	if o.Today.IsZero() {
		o.Today = time.Now()
	}
	return o
}

// Generate builds PastDays+1 observed points ending today followed by
// FutureDays forecast points. The forecast is anchored on the last observed
// price and walks toward target.TargetPrice when target matches the
// security, otherwise toward a DefaultDrift move from the anchor.
func Generate(security entity.Security, target *entity.Prediction, opts Options, rnd RandomSource) ([]entity.ChartPoint, error) {
	if !finite(security.Price) || security.Price <= 0 {
		return nil, core.InvalidInput("price must be positive, got %v for %q", security.Price, security.Symbol)
	}
	if opts.PastDays < 0 || opts.FutureDays < 0 {
		return nil, core.InvalidInput("horizons must not be negative, got past=%d future=%d", opts.PastDays, opts.FutureDays)
	}
	if rnd == nil {
		return nil, core.InvalidInput("random source is required")
	}
	opts = opts.withDefaults()

	today := utils.StartOfDay(opts.Today)
	points := make([]entity.ChartPoint, 0, opts.PastDays+1+opts.FutureDays)

	changeFraction := 0.0
	if finite(security.ChangePercent) {
		changeFraction = security.ChangePercent / 100
	}
	for daysAgo := opts.PastDays; daysAgo >= 0; daysAgo-- {
		noise := uniform(rnd, opts.PriceNoise)
		scale := opts.ScaleFloor + rnd.Float64()*(1-opts.ScaleFloor)
		volume := rnd.Float64()*50 + 10

		price := roundPrice(security.Price * scale * (1 + trend(opts.PastDays, daysAgo, changeFraction) + noise))
		day := today.AddDate(0, 0, -daysAgo)
		points = append(points, entity.ChartPoint{
			Date:   day.Format(utils.ChartDateLayout),
			Time:   day,
			Price:  utils.ToPointer(price),
			Volume: fmt.Sprintf("%.1fM", volume),
		})
	}

	if opts.FutureDays == 0 {
		return points, nil
	}

	anchor := *points[len(points)-1].Price
	goal := anchor * (1 + opts.DefaultDrift)
	if target != nil && target.Matches(security.Symbol) && target.TargetPrice > 0 && finite(target.TargetPrice) {
		goal = target.TargetPrice
	}
	step := (goal - anchor) / float64(opts.FutureDays)

	for i := 1; i <= opts.FutureDays; i++ {
		predicted := roundPrice(anchor + step*float64(i) + uniform(rnd, opts.ForecastNoise))
		day := today.AddDate(0, 0, i)
		points = append(points, entity.ChartPoint{
			Date:         day.Format(utils.ChartDateLayout),
			Time:         day,
			Prediction:   utils.ToPointer(predicted),
			IsPrediction: true,
		})
	}

	return points, nil
}

// trend interpolates from 0 at the oldest point to changeFraction today.
func trend(pastDays, daysAgo int, changeFraction float64) float64 {
	if pastDays == 0 {
		return changeFraction
	}
	return float64(pastDays-daysAgo) / float64(pastDays) * changeFraction
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundPrice rounds to cents while keeping the result strictly positive.
// Non-finite values collapse to minPrice.
func roundPrice(v float64) float64 {
	if !finite(v) {
		return minPrice
	}
	r := math.Round(v*100) / 100
	if r > 0 {
		return r
	}
	return math.Max(v, minPrice)
}

// PredictionStart returns the date label of the first forecast point, or
// "" when the series has no forecast region.
func PredictionStart(points []entity.ChartPoint) string {
	for _, p := range points {
		if p.IsPrediction {
			return p.Date
		}
	}
	return ""
}
