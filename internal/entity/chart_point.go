package entity

import "time"

// ChartPoint is one sample of a generated price chart. Exactly one of
// Price (observed) and Prediction (forecast) is set.
type ChartPoint struct {
	Date         string    `json:"date"`
	Time         time.Time `json:"-"`
	Price        *float64  `json:"price"`
	Prediction   *float64  `json:"prediction"`
	IsPrediction bool      `json:"isPrediction"`
	Volume       string    `json:"volume,omitempty"`
}
