package repository

import (
	"context"
	"errors"

	"golang-stock-dashboard/internal/entity"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// SecurityRepository reads security quotes in list order.
type SecurityRepository interface {
	List(ctx context.Context) ([]entity.Security, error)
	GetBySymbol(ctx context.Context, symbol string) (*entity.Security, error)
}

// PredictionRepository reads published predictions in list order.
type PredictionRepository interface {
	List(ctx context.Context) ([]entity.Prediction, error)
	GetBySymbol(ctx context.Context, symbol string) (*entity.Prediction, error)
}

// NewsRepository reads news articles, newest first.
type NewsRepository interface {
	List(ctx context.Context) ([]entity.NewsArticle, error)
	GetByID(ctx context.Context, id uint) (*entity.NewsArticle, error)
}

// MarketIndexRepository reads market index levels in list order.
type MarketIndexRepository interface {
	List(ctx context.Context) ([]entity.MarketIndex, error)
}

// Repositories bundles the read side of the data access boundary.
type Repositories struct {
	Securities  SecurityRepository
	Predictions PredictionRepository
	News        NewsRepository
	Indices     MarketIndexRepository
}
