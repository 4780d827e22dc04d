package service

import (
	"context"
	"sort"
	"strings"

	"golang-stock-dashboard/internal/core"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// PredictionService defines the read operations on predictions.
type PredictionService interface {
	List(ctx context.Context) ([]entity.Prediction, error)
	Top(ctx context.Context, limit int) ([]entity.Prediction, error)
	Get(ctx context.Context, symbol string) (*entity.Prediction, error)
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(predictionRepo repository.PredictionRepository, logger *logger.Logger) PredictionService {
	return &predictionService{
		predictionRepo: predictionRepo,
		logger:         logger,
	}
}

type predictionService struct {
	predictionRepo repository.PredictionRepository
	logger         *logger.Logger
}

func (s *predictionService) List(ctx context.Context) ([]entity.Prediction, error) {
	predictions, err := s.predictionRepo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list predictions", logger.ErrorField(err))
		return nil, err
	}
	for i := range predictions {
		normalizeDirection(&predictions[i])
	}
	return predictions, nil
}

// Top returns up to limit predictions, highest confidence first. Equal
// confidence keeps list order.
func (s *predictionService) Top(ctx context.Context, limit int) ([]entity.Prediction, error) {
	if limit < 0 {
		return nil, core.InvalidInput("limit must not be negative, got %d", limit)
	}
	predictions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})
	if limit < len(predictions) {
		predictions = predictions[:limit]
	}
	return predictions, nil
}

func (s *predictionService) Get(ctx context.Context, symbol string) (*entity.Prediction, error) {
	prediction, err := s.predictionRepo.GetBySymbol(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
	if err != nil {
		return nil, err
	}
	normalizeDirection(prediction)
	return prediction, nil
}

// normalizeDirection makes the direction agree with the sign of the
// expected move.
func normalizeDirection(p *entity.Prediction) {
	p.Direction = p.ImpliedDirection(p.CurrentPrice)
}
