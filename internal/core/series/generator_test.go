package series

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"golang-stock-dashboard/internal/core"
	"golang-stock-dashboard/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedToday = time.Date(2024, time.February, 15, 14, 30, 0, 0, time.UTC)

func apple() entity.Security {
	return entity.Security{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Price:         185.92,
		Change:        3.45,
		ChangePercent: 1.89,
		Volume:        "52.3M",
		MarketCap:     "2.89T",
	}
}

func optsAt(past, future int) Options {
	o := DefaultOptions()
	o.PastDays = past
	o.FutureDays = future
	o.Today = fixedToday
	return o
}

func TestGenerate_DefaultLayout(t *testing.T) {
	points, err := Generate(apple(), nil, optsAt(30, 7), NewSeededSource(42))
	require.NoError(t, err)
	require.Len(t, points, 38)

	for i, p := range points[:31] {
		assert.False(t, p.IsPrediction, "point %d", i)
		assert.NotNil(t, p.Price, "point %d", i)
		assert.Nil(t, p.Prediction, "point %d", i)
		assert.NotEmpty(t, p.Volume, "point %d", i)
	}
	for i, p := range points[31:] {
		assert.True(t, p.IsPrediction, "forecast %d", i)
		assert.Nil(t, p.Price, "forecast %d", i)
		assert.NotNil(t, p.Prediction, "forecast %d", i)
		assert.Empty(t, p.Volume, "forecast %d", i)
	}

	assert.Equal(t, "Jan 16", points[0].Date)
	assert.Equal(t, "Feb 15", points[30].Date)
	assert.Equal(t, "Feb 16", points[31].Date)
	assert.Equal(t, "Feb 22", points[37].Date)
	assert.Equal(t, "Feb 16", PredictionStart(points))

	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Time.After(points[i-1].Time), "dates must strictly increase at %d", i)
	}
}

func TestGenerate_ObservedPricesStayNearCurrentPrice(t *testing.T) {
	sec := apple()
	points, err := Generate(sec, nil, optsAt(30, 0), NewSeededSource(7))
	require.NoError(t, err)

	c := sec.ChangePercent / 100
	lower := sec.Price*DefaultScaleFloor*(1+math.Min(0, c)-DefaultPriceNoise) - 0.005
	upper := sec.Price*(1+math.Max(0, c)+DefaultPriceNoise) + 0.005
	for _, p := range points {
		require.NotNil(t, p.Price)
		assert.Greater(t, *p.Price, 0.0)
		assert.GreaterOrEqual(t, *p.Price, lower)
		assert.LessOrEqual(t, *p.Price, upper)
	}
}

func TestGenerate_ForecastWalksTowardTarget(t *testing.T) {
	sec := apple()
	target := &entity.Prediction{Symbol: "AAPL", TargetPrice: 198.50}

	points, err := Generate(sec, target, optsAt(30, 7), NewSeededSource(3))
	require.NoError(t, err)

	anchor := *points[30].Price
	step := (target.TargetPrice - anchor) / 7
	for i, p := range points[31:] {
		expected := anchor + step*float64(i+1)
		assert.InDelta(t, expected, *p.Prediction, DefaultForecastNoise+0.005, "forecast %d", i)
	}
	assert.InDelta(t, target.TargetPrice, *points[37].Prediction, DefaultForecastNoise+0.005)
}

func TestGenerate_DefaultDriftWithoutMatchingTarget(t *testing.T) {
	sec := apple()

	for name, target := range map[string]*entity.Prediction{
		"no target":        nil,
		"other symbol":     {Symbol: "NVDA", TargetPrice: 785},
		"non-positive":     {Symbol: "AAPL", TargetPrice: 0},
		"case-insensitive": {Symbol: "aapl", TargetPrice: 150},
	} {
		t.Run(name, func(t *testing.T) {
			points, err := Generate(sec, target, optsAt(30, 7), NewSeededSource(11))
			require.NoError(t, err)

			anchor := *points[30].Price
			goal := anchor * (1 + DefaultDrift)
			if target != nil && target.Matches(sec.Symbol) && target.TargetPrice > 0 {
				goal = target.TargetPrice
			}
			assert.InDelta(t, goal, *points[37].Prediction, DefaultForecastNoise+0.005)
		})
	}
}

func TestGenerate_ZeroHorizons(t *testing.T) {
	points, err := Generate(apple(), nil, optsAt(0, 0), NewSeededSource(1))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.False(t, points[0].IsPrediction)
	assert.Equal(t, "Feb 15", points[0].Date)

	points, err = Generate(apple(), nil, optsAt(0, 3), NewSeededSource(1))
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.Equal(t, "Feb 16", points[1].Date)

	points, err = Generate(apple(), nil, optsAt(5, 0), NewSeededSource(1))
	require.NoError(t, err)
	require.Len(t, points, 6)
	assert.Empty(t, PredictionStart(points))
}

func TestGenerate_InvalidInput(t *testing.T) {
	zero := apple()
	zero.Price = 0
	negative := apple()
	negative.Price = -1
	nan := apple()
	nan.Price = math.NaN()

	tests := []struct {
		name     string
		security entity.Security
		opts     Options
		rnd      RandomSource
	}{
		{"zero price", zero, optsAt(30, 7), NewSeededSource(1)},
		{"negative price", negative, optsAt(30, 7), NewSeededSource(1)},
		{"NaN price", nan, optsAt(30, 7), NewSeededSource(1)},
		{"negative past", apple(), optsAt(-1, 7), NewSeededSource(1)},
		{"negative future", apple(), optsAt(30, -1), NewSeededSource(1)},
		{"nil random source", apple(), optsAt(30, 7), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Generate(tt.security, nil, tt.opts, tt.rnd)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
			assert.Nil(t, points)
		})
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	target := &entity.Prediction{Symbol: "AAPL", TargetPrice: 198.50}

	a, err := Generate(apple(), target, optsAt(30, 7), NewSeededSource(2024))
	require.NoError(t, err)
	b, err := Generate(apple(), target, optsAt(30, 7), NewSeededSource(2024))
	require.NoError(t, err)

	rawA, err := json.Marshal(a)
	require.NoError(t, err)
	rawB, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, rawA, rawB)

	c, err := Generate(apple(), target, optsAt(30, 7), NewSeededSource(2025))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_TinyPriceStaysPositive(t *testing.T) {
	penny := entity.Security{Symbol: "PNY", Price: 0.004, ChangePercent: -50}

	points, err := Generate(penny, nil, optsAt(30, 7), NewSeededSource(5))
	require.NoError(t, err)
	assertPositive(t, points)
}

func TestGenerate_NonFiniteInputs(t *testing.T) {
	t.Run("NaN change percent means no trend", func(t *testing.T) {
		security := entity.Security{Symbol: "NAN", Price: 10, ChangePercent: math.NaN()}
		points, err := Generate(security, nil, optsAt(2, 1), NewSeededSource(1))
		require.NoError(t, err)
		require.Len(t, points, 4)
		assertPositive(t, points)

		flat, err := Generate(entity.Security{Symbol: "NAN", Price: 10}, nil, optsAt(2, 1), NewSeededSource(1))
		require.NoError(t, err)
		assert.Equal(t, flat, points)
	})

	t.Run("infinite target falls back to default drift", func(t *testing.T) {
		target := &entity.Prediction{Symbol: "AAPL", TargetPrice: math.Inf(1)}
		points, err := Generate(apple(), target, optsAt(30, 7), NewSeededSource(3))
		require.NoError(t, err)
		assertPositive(t, points)

		anchor := *points[30].Price
		last := *points[len(points)-1].Prediction
		assert.InDelta(t, anchor*(1+DefaultDrift), last, DefaultForecastNoise+0.01)
	})

	t.Run("roundPrice", func(t *testing.T) {
		assert.Equal(t, minPrice, roundPrice(math.NaN()))
		assert.Equal(t, minPrice, roundPrice(math.Inf(1)))
		assert.Equal(t, minPrice, roundPrice(math.Inf(-1)))
		assert.Equal(t, 12.35, roundPrice(12.345678))
	})
}

func assertPositive(t *testing.T, points []entity.ChartPoint) {
	t.Helper()
	for i, p := range points {
		v := p.Price
		if p.IsPrediction {
			v = p.Prediction
		}
		require.NotNil(t, v, "point %d", i)
		assert.False(t, math.IsNaN(*v) || math.IsInf(*v, 0), "point %d is %v", i, *v)
		assert.Greater(t, *v, 0.0, "point %d", i)
	}
}

func TestSummarize(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	points := []entity.ChartPoint{
		{Price: price(100)},
		{Price: price(110)},
		{Price: price(99)},
		{Price: price(104.5)},
		{Prediction: price(108), IsPrediction: true},
		{Prediction: price(109.5), IsPrediction: true},
	}

	s := Summarize(points)
	assert.Equal(t, 100.0, s.Open)
	assert.Equal(t, 104.5, s.Close)
	assert.Equal(t, 99.0, s.Min)
	assert.Equal(t, 110.0, s.Max)
	assert.InDelta(t, 103.38, s.Mean, 0.01)
	assert.InDelta(t, 4.5, s.PeriodChange, 0.001)
	assert.Greater(t, s.Volatility, 0.0)
	assert.Equal(t, 109.5, s.ForecastClose)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
