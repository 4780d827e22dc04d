package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"golang-stock-dashboard/internal/core"
	"golang-stock-dashboard/internal/core/series"
	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/cache"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"
)

// ChartService generates price charts for securities.
type ChartService interface {
	Chart(ctx context.Context, req dto.ChartRequest) (*dto.ChartResponse, error)
	History(ctx context.Context, symbol, historyRange string, seed *int64) (*dto.ChartResponse, error)
}

var historyRanges = map[string]int{
	"1d": 1,
	"1w": 7,
	"1m": 30,
	"3m": 90,
	"1y": 365,
}

// HistoryDays maps a history range (1d, 1w, 1m, 3m, 1y) to observed days.
// An empty range means one month.
func HistoryDays(historyRange string) (int, error) {
	r := strings.ToLower(strings.TrimSpace(historyRange))
	if r == "" {
		r = common.DefaultHistoryRange
	}
	days, ok := historyRanges[r]
	if !ok {
		return 0, core.InvalidInput("unknown history range %q, want one of 1d, 1w, 1m, 3m, 1y", historyRange)
	}
	return days, nil
}

// NewChartService creates a new chart service.
func NewChartService(
	securityRepo repository.SecurityRepository,
	predictionRepo repository.PredictionRepository,
	chartCache cache.Cache,
	cfg config.Chart,
	logger *logger.Logger,
) ChartService {
	return &chartService{
		securityRepo:   securityRepo,
		predictionRepo: predictionRepo,
		cache:          chartCache,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
		seeds:          rand.Int63,
	}
}

type chartService struct {
	securityRepo   repository.SecurityRepository
	predictionRepo repository.PredictionRepository
	cache          cache.Cache
	cfg            config.Chart
	logger         *logger.Logger
	now            func() time.Time
	seeds          func() int64
}

// Chart returns the series for req.Symbol. Requests without a seed share
// one drawn seed per symbol, horizon and day until the cache entry expires.
func (s *chartService) Chart(ctx context.Context, req dto.ChartRequest) (*dto.ChartResponse, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	past, future := s.cfg.PastDays, s.cfg.FutureDays
	if req.PastDays != nil {
		past = *req.PastDays
	}
	if req.FutureDays != nil {
		future = *req.FutureDays
	}
	if err := s.checkHorizon("past", past); err != nil {
		return nil, err
	}
	if err := s.checkHorizon("future", future); err != nil {
		return nil, err
	}

	today := s.now()
	seedKey := "auto"
	if req.Seed != nil {
		seedKey = strconv.FormatInt(*req.Seed, 10)
	}
	key := fmt.Sprintf(common.CacheKeyChart, symbol, today.Format("2006-01-02"), past, future, seedKey)

	var cached dto.ChartResponse
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		s.logger.DebugContext(ctx, "Chart served from cache", logger.StringField("key", key))
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.WarnContext(ctx, "Failed to read chart cache", logger.StringField("key", key), logger.ErrorField(err))
	}

	security, err := s.securityRepo.GetBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	target, err := s.predictionRepo.GetBySymbol(ctx, symbol)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.ErrorContext(ctx, "Failed to get prediction for chart", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, err
	}

	seed := s.seeds()
	if req.Seed != nil {
		seed = *req.Seed
	}
	opts := s.cfg.Options()
	opts.PastDays, opts.FutureDays, opts.Today = past, future, today

	points, err := series.Generate(*security, target, opts, series.NewSeededSource(seed))
	if err != nil {
		return nil, err
	}

	resp := &dto.ChartResponse{
		Symbol:          symbol,
		PastDays:        past,
		FutureDays:      future,
		Seed:            seed,
		PredictionStart: series.PredictionStart(points),
		Points:          points,
		Summary:         series.Summarize(points),
	}
	if target != nil && target.TargetPrice > 0 && future > 0 {
		resp.TargetPrice = utils.ToPointer(target.TargetPrice)
	}

	if err := s.cache.Set(ctx, key, resp, s.cfg.CacheTTL); err != nil {
		s.logger.WarnContext(ctx, "Failed to write chart cache", logger.StringField("key", key), logger.ErrorField(err))
	}
	return resp, nil
}

func (s *chartService) checkHorizon(name string, days int) error {
	if days < 0 {
		return core.InvalidInput("%s days must not be negative, got %d", name, days)
	}
	if s.cfg.MaxDays > 0 && days > s.cfg.MaxDays {
		return core.InvalidInput("%s days must be at most %d, got %d", name, s.cfg.MaxDays, days)
	}
	return nil
}

// History returns the observed series only, sized by the history range.
func (s *chartService) History(ctx context.Context, symbol, historyRange string, seed *int64) (*dto.ChartResponse, error) {
	days, err := HistoryDays(historyRange)
	if err != nil {
		return nil, err
	}
	future := 0
	resp, err := s.Chart(ctx, dto.ChartRequest{Symbol: symbol, PastDays: &days, FutureDays: &future, Seed: seed})
	if err != nil {
		return nil, err
	}
	resp.Range = strings.ToLower(strings.TrimSpace(historyRange))
	if resp.Range == "" {
		resp.Range = common.DefaultHistoryRange
	}
	return resp, nil
}
