package dto

import "golang-stock-dashboard/internal/entity"

// NewsFeed is the news page layout: one featured article, a short side
// column and the remaining latest articles.
type NewsFeed struct {
	Category string               `json:"category"`
	Featured *entity.NewsArticle  `json:"featured"`
	Side     []entity.NewsArticle `json:"side"`
	Latest   []entity.NewsArticle `json:"latest"`
}
