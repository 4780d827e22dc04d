package entity

import "time"

// MarketIndex is a snapshot of a market index level such as the S&P 500.
type MarketIndex struct {
	Symbol        string    `gorm:"primaryKey;type:varchar(16)" json:"symbol"`
	Name          string    `gorm:"not null" json:"name"`
	Value         float64   `gorm:"not null" json:"value"`
	Change        float64   `gorm:"not null" json:"change"`
	ChangePercent float64   `gorm:"not null" json:"changePercent"`
	Position      int       `gorm:"not null;default:0" json:"-"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

// TableName specifies the table name for the MarketIndex model.
func (MarketIndex) TableName() string {
	return "market_indices"
}

// PercentChange returns the signed daily percent change.
func (m MarketIndex) PercentChange() float64 {
	return m.ChangePercent
}
