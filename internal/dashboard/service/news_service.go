package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-stock-dashboard/internal/core/views"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/cache"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
)

// NewsService defines the read operations on news articles.
type NewsService interface {
	List(ctx context.Context, category string) ([]entity.NewsArticle, error)
	Feed(ctx context.Context, category string) (*dto.NewsFeed, error)
	Get(ctx context.Context, id uint) (*entity.NewsArticle, error)
}

// NewNewsService creates a new news service. Filtered lists are cached for
// ttl under the news key prefix, which the ingestion service clears.
func NewNewsService(newsRepo repository.NewsRepository, newsCache cache.Cache, ttl time.Duration, logger *logger.Logger) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		cache:    newsCache,
		ttl:      ttl,
		logger:   logger,
	}
}

type newsService struct {
	newsRepo repository.NewsRepository
	cache    cache.Cache
	ttl      time.Duration
	logger   *logger.Logger
}

func (s *newsService) List(ctx context.Context, category string) ([]entity.NewsArticle, error) {
	filter := entity.ParseNewsFilter(category)
	if !filter.Known() {
		return []entity.NewsArticle{}, nil
	}
	key := fmt.Sprintf(common.CacheKeyNewsList, filter)

	var cached []entity.NewsArticle
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		s.logger.DebugContext(ctx, "News served from cache", logger.StringField("key", key))
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.WarnContext(ctx, "Failed to read news cache", logger.StringField("key", key), logger.ErrorField(err))
	}

	articles, err := s.newsRepo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list news", logger.ErrorField(err))
		return nil, err
	}
	articles = views.FilterByCategory(articles, filter)

	if err := s.cache.Set(ctx, key, articles, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "Failed to write news cache", logger.StringField("key", key), logger.ErrorField(err))
	}
	return articles, nil
}

// Feed splits the filtered list into the featured article, the side
// column and the remaining latest articles.
func (s *newsService) Feed(ctx context.Context, category string) (*dto.NewsFeed, error) {
	articles, err := s.List(ctx, category)
	if err != nil {
		return nil, err
	}

	feed := &dto.NewsFeed{
		Category: string(entity.ParseNewsFilter(category)),
		Side:     []entity.NewsArticle{},
		Latest:   []entity.NewsArticle{},
	}
	if len(articles) == 0 {
		return feed, nil
	}

	feed.Featured = &articles[0]
	rest := articles[1:]
	side := common.NewsFeedSideCount
	if side > len(rest) {
		side = len(rest)
	}
	feed.Side = append(feed.Side, rest[:side]...)
	feed.Latest = append(feed.Latest, rest[side:]...)
	return feed, nil
}

func (s *newsService) Get(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	return s.newsRepo.GetByID(ctx, id)
}
