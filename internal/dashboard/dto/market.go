package dto

import (
	"time"

	"golang-stock-dashboard/internal/entity"
)

// MoversResponse lists the securities with the largest moves.
type MoversResponse struct {
	Type   string            `json:"type"`
	Limit  int               `json:"limit"`
	Stocks []entity.Security `json:"stocks"`
}

// MarketStatus reports whether the exchange session is open.
type MarketStatus struct {
	IsOpen    bool      `json:"isOpen"`
	Status    string    `json:"status"`
	Timezone  string    `json:"timezone"`
	OpenTime  string    `json:"openTime"`
	CloseTime string    `json:"closeTime"`
	Now       time.Time `json:"now"`
}
