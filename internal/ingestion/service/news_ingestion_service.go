package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/internal/ingestion/config"
	"golang-stock-dashboard/internal/ingestion/dto"
	"golang-stock-dashboard/internal/ingestion/repository"
	"golang-stock-dashboard/pkg/cache"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/telegram"
	"golang-stock-dashboard/pkg/utils"

	"github.com/mmcdole/gofeed"
)

// NewsIngestionService pulls the configured feeds into the news store.
type NewsIngestionService interface {
	Run(ctx context.Context) (*dto.IngestionReport, error)
}

// NewNewsIngestionService creates a new news ingestion service. notifier
// may be nil when new-article notifications are disabled.
func NewNewsIngestionService(
	feeds []config.Feed,
	cfg config.Ingestion,
	source FeedSource,
	fetcher ArticleFetcher,
	newsRepo repository.NewsRepository,
	marketRepo repository.MarketRepository,
	newsCache cache.Cache,
	notifier telegram.Notifier,
	log *logger.Logger,
) NewsIngestionService {
	return &newsIngestionService{
		feeds:      feeds,
		cfg:        cfg,
		source:     source,
		fetcher:    fetcher,
		newsRepo:   newsRepo,
		marketRepo: marketRepo,
		cache:      newsCache,
		notifier:   notifier,
		logger:     log,
		now:        time.Now,
	}
}

type newsIngestionService struct {
	feeds      []config.Feed
	cfg        config.Ingestion
	source     FeedSource
	fetcher    ArticleFetcher
	newsRepo   repository.NewsRepository
	marketRepo repository.MarketRepository
	cache      cache.Cache
	notifier   telegram.Notifier
	logger     *logger.Logger
	now        func() time.Time
}

// Run ingests every feed concurrently and invalidates cached news lists
// when anything new was stored.
func (s *newsIngestionService) Run(ctx context.Context) (*dto.IngestionReport, error) {
	known := map[string]bool{}
	securities, err := s.marketRepo.Securities(ctx)
	if err != nil {
		s.logger.Warn("Failed to load securities, ticker detection disabled", logger.ErrorField(err))
	}
	for _, sec := range securities {
		known[sec.Symbol] = true
	}

	maxConcurrent := s.cfg.MaxConcurrentFeeds
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		report   = &dto.IngestionReport{}
		articles []entity.NewsArticle
	)
	for _, feed := range s.feeds {
		feed := feed
		if !utils.ShouldContinue(ctx) {
			break
		}
		wg.Add(1)
		utils.GoSafe(s.logger, func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			feedReport, stored := s.ingestFeed(ctx, feed, known)

			mu.Lock()
			defer mu.Unlock()
			report.Feeds = append(report.Feeds, feedReport)
			report.Stored += feedReport.Stored
			articles = append(articles, stored...)
		})
	}
	wg.Wait()

	sort.Slice(report.Feeds, func(i, j int) bool { return report.Feeds[i].URL < report.Feeds[j].URL })

	if report.Stored > 0 {
		if err := s.cache.DeletePrefix(ctx, common.CacheKeyNewsPrefix); err != nil {
			s.logger.Error("Failed to invalidate news cache", logger.ErrorField(err))
		}
		s.notify(articles)
	}

	s.logger.Info("News ingestion finished",
		logger.IntField("feeds", len(s.feeds)),
		logger.IntField("stored", report.Stored),
	)
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (s *newsIngestionService) ingestFeed(ctx context.Context, feedCfg config.Feed, known map[string]bool) (dto.FeedReport, []entity.NewsArticle) {
	report := dto.FeedReport{URL: feedCfg.URL, Errors: []string{}}

	feed, err := s.source.Fetch(ctx, feedCfg.URL)
	if err != nil {
		s.logger.Error("Failed to fetch feed", logger.StringField("url", feedCfg.URL), logger.ErrorField(err))
		report.Status = dto.StatusFailed
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}
	report.Fetched = len(feed.Items)

	items, err := s.freshItems(ctx, feed.Items)
	if err != nil {
		report.Status = dto.StatusFailed
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}
	report.Skipped = report.Fetched - len(items)

	var stored []entity.NewsArticle
	for _, item := range items {
		if !utils.ShouldContinue(ctx) {
			break
		}
		if s.cfg.MaxItemsPerFeed > 0 && len(stored) >= s.cfg.MaxItemsPerFeed {
			break
		}

		article, err := s.buildArticle(ctx, feedCfg, feed, item, known)
		if errors.Is(err, errSkipItem) {
			report.Skipped++
			continue
		}
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			continue
		}

		inserted, err := s.newsRepo.CreateIgnoreConflict(ctx, &article)
		if err != nil {
			s.logger.Error("Failed to store news", logger.StringField("url", article.URL), logger.ErrorField(err))
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		if !inserted {
			report.Skipped++
			continue
		}
		stored = append(stored, article)
	}

	report.Stored = len(stored)
	switch {
	case len(report.Errors) == 0:
		report.Status = dto.StatusSuccess
	case report.Stored > 0:
		report.Status = dto.StatusPartial
	default:
		report.Status = dto.StatusFailed
	}
	return report, stored
}

// freshItems drops items that are undated, older than the configured age
// or already stored, and returns the rest newest first.
func (s *newsIngestionService) freshItems(ctx context.Context, items []*gofeed.Item) ([]*gofeed.Item, error) {
	cutoff := time.Time{}
	if s.cfg.MaxNewsAgeInDays > 0 {
		cutoff = s.now().Add(-time.Duration(s.cfg.MaxNewsAgeInDays) * 24 * time.Hour)
	}

	hashes := make([]string, 0, len(items))
	candidates := make([]*gofeed.Item, 0, len(items))
	for _, item := range items {
		if item == nil || item.Link == "" || item.PublishedParsed == nil {
			continue
		}
		if item.PublishedParsed.Before(cutoff) {
			continue
		}
		candidates = append(candidates, item)
		hashes = append(hashes, hashIdentifier(item))
	}

	existing, err := s.newsRepo.ExistingHashes(ctx, hashes)
	if err != nil {
		s.logger.Error("Failed to filter existing news items", logger.ErrorField(err))
		return nil, err
	}

	fresh := candidates[:0]
	for i, item := range candidates {
		if !existing[hashes[i]] {
			fresh = append(fresh, item)
		}
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].PublishedParsed.After(*fresh[j].PublishedParsed)
	})
	return fresh, nil
}

var errSkipItem = errors.New("skip item")

func (s *newsIngestionService) buildArticle(ctx context.Context, feedCfg config.Feed, feed *gofeed.Feed, item *gofeed.Item, known map[string]bool) (entity.NewsArticle, error) {
	link, err := url.Parse(item.Link)
	if err != nil {
		return entity.NewsArticle{}, fmt.Errorf("invalid link %q: %w", item.Link, err)
	}
	if utils.ContainsString(s.cfg.BlacklistedDomains, link.Hostname()) {
		s.logger.Debug("Skip news from blacklisted domain", logger.StringField("domain", link.Hostname()))
		return entity.NewsArticle{}, errSkipItem
	}

	fragment := item.Description
	if fragment == "" {
		fragment = item.Content
	}
	excerpt, image := excerptAndImage(fragment)
	if excerpt == "" && s.fetcher != nil {
		text, err := s.fetcher.FetchText(ctx, item.Link)
		if err != nil {
			s.logger.Warn("Failed to fetch article body", logger.StringField("url", item.Link), logger.ErrorField(err))
		} else {
			excerpt = utils.Truncate(text, maxExcerptLength)
		}
	}
	if image == "" {
		image = itemImage(item)
	}

	title := utils.CollapseSpaces(utils.CleanToValidUTF8(item.Title))
	if title == "" {
		return entity.NewsArticle{}, errSkipItem
	}
	tickers := detectTickers(title+" "+excerpt, known)

	return entity.NewsArticle{
		Title:          title,
		Excerpt:        excerpt,
		Source:         sourceName(feedCfg.Source, feed, item.Link),
		Category:       classify(feedCfg.Category, item, excerpt, tickers),
		PublishedAt:    item.PublishedParsed.UTC(),
		URL:            item.Link,
		ImageURL:       image,
		Tickers:        tickers,
		HashIdentifier: hashIdentifier(item),
	}, nil
}

func (s *newsIngestionService) notify(articles []entity.NewsArticle) {
	if !s.cfg.NotifyNewArticles || s.notifier == nil || len(articles) == 0 {
		return
	}
	for _, msg := range telegram.FormatNewsHeadlines(articles) {
		if err := s.notifier.SendMessage(msg); err != nil {
			s.logger.Error("Failed to send news headlines", logger.ErrorField(err))
			return
		}
	}
}
