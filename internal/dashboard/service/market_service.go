package service

import (
	"context"
	"fmt"
	"time"

	"golang-stock-dashboard/internal/core"
	"golang-stock-dashboard/internal/core/views"
	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"
)

// MarketService defines the market-wide read operations.
type MarketService interface {
	Indices(ctx context.Context) ([]entity.MarketIndex, error)
	Movers(ctx context.Context, direction string, limit int) (*dto.MoversResponse, error)
	Status(now time.Time) (dto.MarketStatus, error)
}

// NewMarketService creates a new market service. It fails when the
// configured exchange timezone cannot be loaded.
func NewMarketService(
	indexRepo repository.MarketIndexRepository,
	securityRepo repository.SecurityRepository,
	cfg config.Market,
	logger *logger.Logger,
) (MarketService, error) {
	location, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid market config: %w", err)
	}
	return &marketService{
		indexRepo:    indexRepo,
		securityRepo: securityRepo,
		cfg:          cfg,
		location:     location,
		logger:       logger,
	}, nil
}

type marketService struct {
	indexRepo    repository.MarketIndexRepository
	securityRepo repository.SecurityRepository
	cfg          config.Market
	location     *time.Location
	logger       *logger.Logger
}

func (s *marketService) Indices(ctx context.Context) ([]entity.MarketIndex, error) {
	indices, err := s.indexRepo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list market indices", logger.ErrorField(err))
		return nil, err
	}
	return indices, nil
}

// Movers ranks the securities by percent change in the given direction.
func (s *marketService) Movers(ctx context.Context, direction string, limit int) (*dto.MoversResponse, error) {
	dir, err := views.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	securities, err := s.securityRepo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list securities for movers", logger.ErrorField(err))
		return nil, err
	}

	ranked, err := views.RankByChange(securities, dir, limit)
	if err != nil {
		return nil, err
	}
	return &dto.MoversResponse{Type: string(dir), Limit: limit, Stocks: ranked}, nil
}

// Status reports whether now falls inside the configured weekday session,
// evaluated in the exchange timezone. The session is [open, close).
func (s *marketService) Status(now time.Time) (dto.MarketStatus, error) {
	open, err := utils.ParseClock(s.cfg.OpenTime)
	if err != nil {
		return dto.MarketStatus{}, core.InvalidInput("bad market open time %q", s.cfg.OpenTime)
	}
	closing, err := utils.ParseClock(s.cfg.CloseTime)
	if err != nil {
		return dto.MarketStatus{}, core.InvalidInput("bad market close time %q", s.cfg.CloseTime)
	}

	local := now.In(s.location)
	minute := local.Hour()*60 + local.Minute()
	isOpen := !utils.IsWeekend(local) && minute >= open && minute < closing

	status := dto.MarketStatus{
		IsOpen:    isOpen,
		Status:    "closed",
		Timezone:  s.location.String(),
		OpenTime:  s.cfg.OpenTime,
		CloseTime: s.cfg.CloseTime,
		Now:       local,
	}
	if isOpen {
		status.Status = "open"
	}
	return status, nil
}
