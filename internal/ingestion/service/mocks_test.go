package service

import (
	"context"
	"sync"

	"golang-stock-dashboard/internal/entity"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/mock"
)

type mockNewsRepository struct {
	mock.Mock
}

func (m *mockNewsRepository) ExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	args := m.Called(ctx, hashes)
	if v, ok := args.Get(0).(map[string]bool); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepository) CreateIgnoreConflict(ctx context.Context, article *entity.NewsArticle) (bool, error) {
	args := m.Called(ctx, article)
	return args.Bool(0), args.Error(1)
}

type mockMarketRepository struct {
	mock.Mock
}

func (m *mockMarketRepository) Securities(ctx context.Context) ([]entity.Security, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]entity.Security); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMarketRepository) Indices(ctx context.Context) ([]entity.MarketIndex, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]entity.MarketIndex); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// stringFeedSource parses canned feed documents keyed by URL.
type stringFeedSource map[string]string

func (s stringFeedSource) Fetch(_ context.Context, url string) (*gofeed.Feed, error) {
	return gofeed.NewParser().ParseString(s[url])
}

type stubFetcher struct {
	text  string
	calls []string
	mu    sync.Mutex
}

func (f *stubFetcher) FetchText(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	return f.text, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (n *recordingNotifier) SendMessage(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
	return n.err
}
