package repository

import (
	"context"
	"fmt"

	"golang-stock-dashboard/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsRepository defines the write side of news storage.
type NewsRepository interface {
	ExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error)
	CreateIgnoreConflict(ctx context.Context, article *entity.NewsArticle) (bool, error)
}

// NewNewsRepository creates a new instance of NewsRepository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

type newsRepository struct {
	db *gorm.DB
}

// ExistingHashes returns the subset of hashes already stored.
func (r *newsRepository) ExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(hashes))
	if len(hashes) == 0 {
		return existing, nil
	}

	var found []string
	err := r.db.WithContext(ctx).Model(&entity.NewsArticle{}).
		Where("hash_identifier IN ?", hashes).
		Pluck("hash_identifier", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing news: %w", err)
	}
	for _, h := range found {
		existing[h] = true
	}
	return existing, nil
}

// CreateIgnoreConflict inserts the article unless its hash identifier is
// already stored. It reports whether a row was written.
func (r *newsRepository) CreateIgnoreConflict(ctx context.Context, article *entity.NewsArticle) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash_identifier"}},
		DoNothing: true,
	}).Create(article)
	if tx.Error != nil {
		return false, fmt.Errorf("failed to insert news: %w", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}
