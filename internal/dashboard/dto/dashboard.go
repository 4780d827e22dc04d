package dto

import "golang-stock-dashboard/internal/entity"

// DashboardOverview is everything the landing page renders at once.
type DashboardOverview struct {
	Indices     []entity.MarketIndex `json:"indices"`
	Predictions []entity.Prediction  `json:"predictions"`
	Gainers     []entity.Security    `json:"gainers"`
	Losers      []entity.Security    `json:"losers"`
	Status      MarketStatus         `json:"marketStatus"`
}

// SelectionResponse is the detail panel for the selected security. The
// prediction is only present when one exists for exactly that symbol.
type SelectionResponse struct {
	Stock      entity.Security    `json:"stock"`
	Prediction *entity.Prediction `json:"prediction,omitempty"`
	Chart      *ChartResponse     `json:"chart"`
}
