package repository

import (
	"context"
	"fmt"

	"golang-stock-dashboard/internal/entity"

	"gorm.io/gorm"
)

// MarketRepository reads the market snapshot used by the digest.
type MarketRepository interface {
	Securities(ctx context.Context) ([]entity.Security, error)
	Indices(ctx context.Context) ([]entity.MarketIndex, error)
}

// NewMarketRepository creates a new instance of MarketRepository.
func NewMarketRepository(db *gorm.DB) MarketRepository {
	return &marketRepository{db: db}
}

type marketRepository struct {
	db *gorm.DB
}

func (r *marketRepository) Securities(ctx context.Context) ([]entity.Security, error) {
	var securities []entity.Security
	if err := r.db.WithContext(ctx).Order("position ASC, symbol ASC").Find(&securities).Error; err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	return securities, nil
}

func (r *marketRepository) Indices(ctx context.Context) ([]entity.MarketIndex, error) {
	var indices []entity.MarketIndex
	if err := r.db.WithContext(ctx).Order("position ASC, symbol ASC").Find(&indices).Error; err != nil {
		return nil, fmt.Errorf("failed to list market indices: %w", err)
	}
	return indices, nil
}
