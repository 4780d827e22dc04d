package entity

import (
	"time"
)

// Security is a point-in-time quote snapshot for a listed stock.
// Change and ChangePercent are stored independently; neither is derived
// from the other.
type Security struct {
	Symbol        string    `gorm:"primaryKey;type:varchar(16)" json:"symbol"`
	Name          string    `gorm:"not null" json:"name"`
	Price         float64   `gorm:"not null" json:"price"`
	Change        float64   `gorm:"not null" json:"change"`
	ChangePercent float64   `gorm:"not null" json:"changePercent"`
	Volume        string    `gorm:"type:varchar(16)" json:"volume"`
	MarketCap     string    `gorm:"type:varchar(16)" json:"marketCap"`
	Position      int       `gorm:"not null;default:0" json:"-"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

// TableName specifies the table name for the Security model.
func (Security) TableName() string {
	return "securities"
}

// PercentChange returns the signed daily percent change.
func (s Security) PercentChange() float64 {
	return s.ChangePercent
}

// SecuritySymbol is the selection key for securities.
func SecuritySymbol(s Security) string {
	return s.Symbol
}
