package service

import (
	"context"
	"errors"
	"time"

	"golang-stock-dashboard/internal/core/views"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
)

// DashboardService composes the landing page and the selection panel.
type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardOverview, error)
	Selection(ctx context.Context, symbol, previous string) (*dto.SelectionResponse, error)
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	stocks StockService,
	predictions PredictionService,
	market MarketService,
	charts ChartService,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		stocks:      stocks,
		predictions: predictions,
		market:      market,
		charts:      charts,
		logger:      logger,
		now:         time.Now,
	}
}

type dashboardService struct {
	stocks      StockService
	predictions PredictionService
	market      MarketService
	charts      ChartService
	logger      *logger.Logger
	now         func() time.Time
}

func (s *dashboardService) Overview(ctx context.Context) (*dto.DashboardOverview, error) {
	indices, err := s.market.Indices(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.predictions.Top(ctx, common.DashboardPredictionCount)
	if err != nil {
		return nil, err
	}
	gainers, err := s.market.Movers(ctx, string(views.Gainers), common.DashboardMoversCount)
	if err != nil {
		return nil, err
	}
	losers, err := s.market.Movers(ctx, string(views.Losers), common.DashboardMoversCount)
	if err != nil {
		return nil, err
	}
	status, err := s.market.Status(s.now())
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to compute market status", logger.ErrorField(err))
	}

	return &dto.DashboardOverview{
		Indices:     indices,
		Predictions: top,
		Gainers:     gainers.Stocks,
		Losers:      losers.Stocks,
		Status:      status,
	}, nil
}

// Selection resolves the selected security from the current list: the
// exact symbol when present, otherwise the first security. previous is
// accepted from the client but never changes the outcome.
func (s *dashboardService) Selection(ctx context.Context, symbol, previous string) (*dto.SelectionResponse, error) {
	securities, err := s.stocks.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var prev *entity.Security
	if previous != "" {
		for i := range securities {
			if securities[i].Symbol == previous {
				prev = &securities[i]
				break
			}
		}
	}

	selected, ok := views.SelectEntity(securities, symbol, entity.SecuritySymbol, prev)
	if !ok {
		return nil, repository.ErrNotFound
	}

	resp := &dto.SelectionResponse{Stock: selected}
	prediction, err := s.predictions.Get(ctx, selected.Symbol)
	switch {
	case err == nil:
		resp.Prediction = prediction
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	resp.Chart, err = s.charts.Chart(ctx, dto.ChartRequest{Symbol: selected.Symbol})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
