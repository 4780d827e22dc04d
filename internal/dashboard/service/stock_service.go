package service

import (
	"context"
	"strings"

	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"
)

// StockService defines the read operations on securities.
type StockService interface {
	List(ctx context.Context, query string) ([]entity.Security, error)
	Get(ctx context.Context, symbol string) (*entity.Security, error)
}

// NewStockService creates a new stock service.
func NewStockService(securityRepo repository.SecurityRepository, logger *logger.Logger) StockService {
	return &stockService{
		securityRepo: securityRepo,
		logger:       logger,
	}
}

type stockService struct {
	securityRepo repository.SecurityRepository
	logger       *logger.Logger
}

// List returns all securities, or those whose symbol or name contains
// query when it is not blank.
func (s *stockService) List(ctx context.Context, query string) ([]entity.Security, error) {
	securities, err := s.securityRepo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list securities", logger.ErrorField(err))
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return securities, nil
	}

	matched := make([]entity.Security, 0, len(securities))
	for _, sec := range securities {
		if utils.ContainsFold(sec.Symbol, query) || utils.ContainsFold(sec.Name, query) {
			matched = append(matched, sec)
		}
	}
	return matched, nil
}

func (s *stockService) Get(ctx context.Context, symbol string) (*entity.Security, error) {
	return s.securityRepo.GetBySymbol(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
}
