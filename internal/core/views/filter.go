package views

import "golang-stock-dashboard/internal/entity"

// FilterByCategory keeps the articles tagged with category, in order.
// entity.CategoryAll returns articles unchanged.
func FilterByCategory(articles []entity.NewsArticle, category entity.NewsCategory) []entity.NewsArticle {
	if category == entity.CategoryAll {
		return articles
	}

	filtered := make([]entity.NewsArticle, 0, len(articles))
	for _, article := range articles {
		if article.Category == category {
			filtered = append(filtered, article)
		}
	}
	return filtered
}
