package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/internal/ingestion/config"
	"golang-stock-dashboard/internal/ingestion/dto"
	"golang-stock-dashboard/pkg/cache"
	"golang-stock-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ingestNow = time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)

const marketsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Markets Wire</title>
  <item>
    <title>NVDA extends rally as chip demand surges</title>
    <link>https://wire.example.com/nvda-rally</link>
    <pubDate>Thu, 15 Feb 2024 10:00:00 GMT</pubDate>
    <description><![CDATA[<p><img src="https://img.example.com/nvda.jpg"/>Shares of NVIDIA climbed again.</p>]]></description>
  </item>
  <item>
    <title>Bitcoin approaches record</title>
    <link>https://wire.example.com/btc</link>
    <pubDate>Thu, 15 Feb 2024 09:00:00 GMT</pubDate>
    <description>Crypto markets rallied overnight.</description>
  </item>
  <item>
    <title>Old news about rates</title>
    <link>https://wire.example.com/old</link>
    <pubDate>Mon, 05 Feb 2024 09:00:00 GMT</pubDate>
    <description>Stale.</description>
  </item>
  <item>
    <title>Body only article</title>
    <link>https://wire.example.com/body-only</link>
    <pubDate>Thu, 15 Feb 2024 08:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Blocked source</title>
    <link>https://spam.example.net/x</link>
    <pubDate>Thu, 15 Feb 2024 08:30:00 GMT</pubDate>
    <description>Spam.</description>
  </item>
</channel>
</rss>`

type ingestionFixture struct {
	svc      *newsIngestionService
	news     *mockNewsRepository
	market   *mockMarketRepository
	cache    cache.Cache
	fetcher  *stubFetcher
	notifier *recordingNotifier
}

func newIngestionFixture(t *testing.T, feeds map[string]string, cfgFeeds []config.Feed) *ingestionFixture {
	t.Helper()
	f := &ingestionFixture{
		news:     new(mockNewsRepository),
		market:   new(mockMarketRepository),
		cache:    cache.New(cache.Config{}, nil),
		fetcher:  &stubFetcher{text: "Full article text recovered from the page."},
		notifier: &recordingNotifier{},
	}
	cfg := config.Default().Ingestion
	cfg.BlacklistedDomains = []string{"spam.example.net"}
	cfg.NotifyNewArticles = true

	f.svc = NewNewsIngestionService(cfgFeeds, cfg, stringFeedSource(feeds), f.fetcher, f.news, f.market, f.cache, f.notifier, logger.NewNop()).(*newsIngestionService)
	f.svc.now = func() time.Time { return ingestNow }
	return f
}

func TestNewsIngestion_Run(t *testing.T) {
	f := newIngestionFixture(t,
		map[string]string{"https://wire.example.com/rss": marketsFeed},
		[]config.Feed{{URL: "https://wire.example.com/rss"}},
	)
	f.market.On("Securities", mock.Anything).Return([]entity.Security{{Symbol: "NVDA"}, {Symbol: "AAPL"}}, nil)
	f.news.On("ExistingHashes", mock.Anything, mock.Anything).Return(map[string]bool{}, nil)

	var stored []entity.NewsArticle
	f.news.On("CreateIgnoreConflict", mock.Anything, mock.AnythingOfType("*entity.NewsArticle")).
		Run(func(args mock.Arguments) { stored = append(stored, *args.Get(1).(*entity.NewsArticle)) }).
		Return(true, nil)

	require.NoError(t, f.cache.Set(context.Background(), "news:list:all", []entity.NewsArticle{{ID: 1}}, time.Minute))

	report, err := f.svc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Feeds, 1)
	feed := report.Feeds[0]
	assert.Equal(t, dto.StatusSuccess, feed.Status)
	assert.Equal(t, 5, feed.Fetched)
	assert.Equal(t, 3, feed.Stored)
	assert.Equal(t, 2, feed.Skipped)
	assert.Equal(t, 3, report.Stored)

	require.Len(t, stored, 3)
	nvda := stored[0]
	assert.Equal(t, "NVDA extends rally as chip demand surges", nvda.Title)
	assert.Equal(t, "Shares of NVIDIA climbed again.", nvda.Excerpt)
	assert.Equal(t, "https://img.example.com/nvda.jpg", nvda.ImageURL)
	assert.Equal(t, "Markets Wire", nvda.Source)
	assert.Equal(t, entity.CategoryStocks, nvda.Category)
	assert.Equal(t, []string{"NVDA"}, []string(nvda.Tickers))
	assert.Len(t, nvda.HashIdentifier, 32)

	assert.Equal(t, entity.CategoryCrypto, stored[1].Category)

	bodyOnly := stored[2]
	assert.Equal(t, "Full article text recovered from the page.", bodyOnly.Excerpt)
	assert.Equal(t, []string{"https://wire.example.com/body-only"}, f.fetcher.calls)

	var cached []entity.NewsArticle
	assert.ErrorIs(t, f.cache.Get(context.Background(), "news:list:all", &cached), cache.ErrMiss)

	require.Len(t, f.notifier.messages, 1)
	assert.Contains(t, f.notifier.messages[0], "*3 New Headlines*")
}

func TestNewsIngestion_SkipsStoredItems(t *testing.T) {
	f := newIngestionFixture(t,
		map[string]string{"https://wire.example.com/rss": marketsFeed},
		[]config.Feed{{URL: "https://wire.example.com/rss", Category: "economy", Source: "Wire"}},
	)
	f.market.On("Securities", mock.Anything).Return(nil, errors.New("db down"))
	f.news.On("ExistingHashes", mock.Anything, mock.Anything).Return(map[string]bool{}, nil)
	f.news.On("CreateIgnoreConflict", mock.Anything, mock.Anything).Return(false, nil)

	require.NoError(t, f.cache.Set(context.Background(), "news:list:all", []entity.NewsArticle{{ID: 1}}, time.Minute))

	report, err := f.svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Stored)
	assert.Equal(t, 5, report.Feeds[0].Skipped)

	var cached []entity.NewsArticle
	assert.NoError(t, f.cache.Get(context.Background(), "news:list:all", &cached), "cache must survive a run that stored nothing")
	assert.Empty(t, f.notifier.messages)
}

func TestNewsIngestion_ExistingHashesFailure(t *testing.T) {
	f := newIngestionFixture(t,
		map[string]string{"https://wire.example.com/rss": marketsFeed},
		[]config.Feed{{URL: "https://wire.example.com/rss"}},
	)
	f.market.On("Securities", mock.Anything).Return([]entity.Security{}, nil)
	f.news.On("ExistingHashes", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	report, err := f.svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Feeds, 1)
	assert.Equal(t, dto.StatusFailed, report.Feeds[0].Status)
	assert.Equal(t, []string{"timeout"}, report.Feeds[0].Errors)
	f.news.AssertNotCalled(t, "CreateIgnoreConflict", mock.Anything, mock.Anything)
}

func TestNewsIngestion_BrokenFeed(t *testing.T) {
	f := newIngestionFixture(t,
		map[string]string{
			"https://wire.example.com/rss": marketsFeed,
			"https://broken.example.com":   "<html>not a feed",
		},
		[]config.Feed{{URL: "https://wire.example.com/rss"}, {URL: "https://broken.example.com"}},
	)
	f.market.On("Securities", mock.Anything).Return([]entity.Security{}, nil)
	f.news.On("ExistingHashes", mock.Anything, mock.Anything).Return(map[string]bool{}, nil)
	f.news.On("CreateIgnoreConflict", mock.Anything, mock.Anything).Return(true, nil)

	report, err := f.svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Feeds, 2)
	assert.Equal(t, "https://broken.example.com", report.Feeds[0].URL)
	assert.Equal(t, dto.StatusFailed, report.Feeds[0].Status)
	assert.Equal(t, dto.StatusSuccess, report.Feeds[1].Status)
	assert.Equal(t, 3, report.Stored)
}
