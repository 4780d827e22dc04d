package service

import (
	"context"
	"fmt"
	"time"

	"golang-stock-dashboard/internal/core/views"
	"golang-stock-dashboard/internal/ingestion/repository"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/telegram"
)

// MarketDigestService sends the daily market summary.
type MarketDigestService interface {
	Run(ctx context.Context) error
}

// NewMarketDigestService creates a new market digest service.
func NewMarketDigestService(marketRepo repository.MarketRepository, notifier telegram.Notifier, topN int, loc *time.Location, log *logger.Logger) MarketDigestService {
	if loc == nil {
		loc = time.UTC
	}
	return &marketDigestService{
		marketRepo: marketRepo,
		notifier:   notifier,
		topN:       topN,
		location:   loc,
		logger:     log,
		now:        time.Now,
	}
}

type marketDigestService struct {
	marketRepo repository.MarketRepository
	notifier   telegram.Notifier
	topN       int
	location   *time.Location
	logger     *logger.Logger
	now        func() time.Time
}

func (s *marketDigestService) Run(ctx context.Context) error {
	securities, err := s.marketRepo.Securities(ctx)
	if err != nil {
		return err
	}
	indices, err := s.marketRepo.Indices(ctx)
	if err != nil {
		return err
	}

	gainers, err := views.RankByChange(securities, views.Gainers, s.topN)
	if err != nil {
		return fmt.Errorf("failed to rank gainers: %w", err)
	}
	losers, err := views.RankByChange(securities, views.Losers, s.topN)
	if err != nil {
		return fmt.Errorf("failed to rank losers: %w", err)
	}

	messages := telegram.FormatMarketDigest(telegram.MarketDigest{
		Date:    s.now().In(s.location),
		Indices: indices,
		Gainers: gainers,
		Losers:  losers,
	})
	for i, msg := range messages {
		if err := s.notifier.SendMessage(msg); err != nil {
			s.logger.Error("Failed to send market digest", logger.IntField("part", i+1), logger.ErrorField(err))
			return fmt.Errorf("failed to send market digest: %w", err)
		}
	}

	s.logger.Info("Market digest sent", logger.IntField("parts", len(messages)))
	return nil
}
