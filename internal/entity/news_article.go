package entity

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// NewsCategory tags an article for the news feed filters.
type NewsCategory string

const (
	// CategoryAll is the filter sentinel; no article carries it.
	CategoryAll     NewsCategory = "all"
	CategoryStocks  NewsCategory = "stocks"
	CategoryCrypto  NewsCategory = "crypto"
	CategoryEconomy NewsCategory = "economy"
	CategoryGeneral NewsCategory = "general"
)

// ParseNewsCategory normalizes an article category. Anything outside the
// known set falls back to CategoryGeneral.
func ParseNewsCategory(s string) NewsCategory {
	switch c := NewsCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryStocks, CategoryCrypto, CategoryEconomy:
		return c
	default:
		return CategoryGeneral
	}
}

// ParseNewsFilter normalizes a filter value; empty means all. Unknown
// values are returned lower-cased so they match no article.
func ParseNewsFilter(s string) NewsCategory {
	c := NewsCategory(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryAll
	}
	return c
}

// Known reports whether c is a stored category or CategoryAll.
func (c NewsCategory) Known() bool {
	switch c {
	case CategoryAll, CategoryStocks, CategoryCrypto, CategoryEconomy, CategoryGeneral:
		return true
	default:
		return false
	}
}

// NewsArticle is a market news item shown on the news feed.
type NewsArticle struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Excerpt        string         `gorm:"type:text" json:"excerpt"`
	Source         string         `json:"source"`
	Category       NewsCategory   `gorm:"type:varchar(16);index;not null" json:"category"`
	PublishedAt    time.Time      `gorm:"index" json:"publishedAt"`
	URL            string         `gorm:"not null" json:"url"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	Tickers        pq.StringArray `gorm:"type:text[]" json:"tickers,omitempty"`
	HashIdentifier string         `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"-"`
}

// TableName specifies the table name for the NewsArticle model.
func (NewsArticle) TableName() string {
	return "news_articles"
}
