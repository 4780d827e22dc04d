package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// FeedSource loads and parses an RSS or Atom feed.
type FeedSource interface {
	Fetch(ctx context.Context, url string) (*gofeed.Feed, error)
}

// NewFeedSource creates a gofeed-backed FeedSource.
func NewFeedSource(timeout time.Duration) FeedSource {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = &http.Client{Timeout: timeout}
	return &feedSource{parser: fp}
}

type feedSource struct {
	parser *gofeed.Parser
}

func (f *feedSource) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}
	return feed, nil
}

// ArticleFetcher downloads an article page and returns its readable text.
type ArticleFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// NewArticleFetcher creates a rate limited ArticleFetcher allowing at most
// maxRequestPerMinute requests.
func NewArticleFetcher(timeout time.Duration, maxRequestPerMinute int, log *logger.Logger) ArticleFetcher {
	limit := rate.Inf
	if maxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(maxRequestPerMinute))
	}
	return &articleFetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, 1),
		logger:  log,
	}
}

type articleFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	logger  *logger.Logger
}

func (f *articleFetcher) FetchText(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("Article fetch returned non-200 status", logger.IntField("status", resp.StatusCode), logger.StringField("url", url))
		return "", fmt.Errorf("failed to fetch article, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return readableText(body)
}

// readableText extracts the main content of an HTML page as plain text.
func readableText(page []byte) (string, error) {
	doc, err := readability.NewDocument(string(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse article: %w", err)
	}
	content, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}
	return utils.CollapseSpaces(utils.CleanToValidUTF8(content.Text())), nil
}
