package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang-stock-dashboard/internal/entity"

	"gorm.io/gorm"
)

// NewPostgresRepositories builds GORM-backed repositories.
func NewPostgresRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Securities:  NewSecurityRepository(db),
		Predictions: NewPredictionRepository(db),
		News:        NewNewsRepository(db),
		Indices:     NewMarketIndexRepository(db),
	}
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// NewSecurityRepository creates a new GORM-based security repository.
func NewSecurityRepository(db *gorm.DB) SecurityRepository {
	return &securityRepository{db: db}
}

type securityRepository struct {
	db *gorm.DB
}

func (r *securityRepository) List(ctx context.Context) ([]entity.Security, error) {
	var securities []entity.Security
	if err := r.db.WithContext(ctx).Order("position ASC, symbol ASC").Find(&securities).Error; err != nil {
		return nil, fmt.Errorf("failed to list securities: %w", err)
	}
	return securities, nil
}

func (r *securityRepository) GetBySymbol(ctx context.Context, symbol string) (*entity.Security, error) {
	var security entity.Security
	err := r.db.WithContext(ctx).Where("symbol = ?", strings.ToUpper(symbol)).First(&security).Error
	if err != nil {
		return nil, notFound(err, "security "+symbol)
	}
	return &security, nil
}

// NewPredictionRepository creates a new GORM-based prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

type predictionRepository struct {
	db *gorm.DB
}

func (r *predictionRepository) List(ctx context.Context) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	if err := r.db.WithContext(ctx).Order("position ASC, symbol ASC").Find(&predictions).Error; err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}

func (r *predictionRepository) GetBySymbol(ctx context.Context, symbol string) (*entity.Prediction, error) {
	var prediction entity.Prediction
	err := r.db.WithContext(ctx).Where("symbol = ?", strings.ToUpper(symbol)).First(&prediction).Error
	if err != nil {
		return nil, notFound(err, "prediction "+symbol)
	}
	return &prediction, nil
}

// NewNewsRepository creates a new GORM-based news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

type newsRepository struct {
	db *gorm.DB
}

func (r *newsRepository) List(ctx context.Context) ([]entity.NewsArticle, error) {
	var articles []entity.NewsArticle
	if err := r.db.WithContext(ctx).Order("published_at DESC, id DESC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return articles, nil
}

func (r *newsRepository) GetByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	var article entity.NewsArticle
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, notFound(err, fmt.Sprintf("news %d", id))
	}
	return &article, nil
}

// NewMarketIndexRepository creates a new GORM-based market index repository.
func NewMarketIndexRepository(db *gorm.DB) MarketIndexRepository {
	return &marketIndexRepository{db: db}
}

type marketIndexRepository struct {
	db *gorm.DB
}

func (r *marketIndexRepository) List(ctx context.Context) ([]entity.MarketIndex, error) {
	var indices []entity.MarketIndex
	if err := r.db.WithContext(ctx).Order("position ASC, symbol ASC").Find(&indices).Error; err != nil {
		return nil, fmt.Errorf("failed to list market indices: %w", err)
	}
	return indices, nil
}
