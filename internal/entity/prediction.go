package entity

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Direction is the qualitative outlook of a prediction.
type Direction string

const (
	DirectionBullish Direction = "bullish"
	DirectionBearish Direction = "bearish"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == DirectionBullish || d == DirectionBearish
}

// Prediction is a price target published for a security.
type Prediction struct {
	Symbol         string         `gorm:"primaryKey;type:varchar(16)" json:"symbol"`
	Name           string         `gorm:"not null" json:"name"`
	CurrentPrice   float64        `gorm:"not null" json:"currentPrice"`
	TargetPrice    float64        `gorm:"not null" json:"targetPrice"`
	ExpectedChange float64        `gorm:"not null" json:"expectedChange"`
	Direction      Direction      `gorm:"type:varchar(10);not null" json:"direction"`
	Confidence     int            `gorm:"not null" json:"confidence"`
	Timeframe      string         `gorm:"type:varchar(32)" json:"timeframe"`
	Analysis       string         `gorm:"type:text" json:"analysis,omitempty"`
	Factors        datatypes.JSON `gorm:"type:jsonb" json:"factors,omitempty"`
	Position       int            `gorm:"not null;default:0" json:"-"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"-"`
}

// TableName specifies the table name for the Prediction model.
func (Prediction) TableName() string {
	return "predictions"
}

// Matches reports whether the prediction targets the given symbol.
func (p Prediction) Matches(symbol string) bool {
	return p.Symbol != "" && strings.EqualFold(p.Symbol, symbol)
}

// ImpliedDirection derives the direction from the sign of
// TargetPrice - currentPrice. The stored Direction is only used to break
// the tie when the target equals the current price.
func (p Prediction) ImpliedDirection(currentPrice float64) Direction {
	switch {
	case p.TargetPrice > currentPrice:
		return DirectionBullish
	case p.TargetPrice < currentPrice:
		return DirectionBearish
	case p.Direction.Valid():
		return p.Direction
	default:
		return DirectionBullish
	}
}

// PredictionSymbol is the selection key for predictions.
func PredictionSymbol(p Prediction) string {
	return p.Symbol
}
