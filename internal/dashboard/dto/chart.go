package dto

import (
	"golang-stock-dashboard/internal/core/series"
	"golang-stock-dashboard/internal/entity"
)

// ChartRequest carries the optional chart query parameters. Nil fields take
// the configured defaults.
type ChartRequest struct {
	Symbol     string
	PastDays   *int
	FutureDays *int
	Seed       *int64
}

// ChartResponse is the generated price series for one security.
type ChartResponse struct {
	Symbol          string              `json:"symbol"`
	PastDays        int                 `json:"pastDays"`
	FutureDays      int                 `json:"futureDays"`
	Seed            int64               `json:"seed"`
	Range           string              `json:"range,omitempty"`
	PredictionStart string              `json:"predictionStart,omitempty"`
	TargetPrice     *float64            `json:"targetPrice,omitempty"`
	Points          []entity.ChartPoint `json:"points"`
	Summary         series.Summary      `json:"summary"`
}
