package service

import (
	"strings"
	"testing"

	"golang-stock-dashboard/internal/entity"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
)

func TestExcerptAndImage(t *testing.T) {
	excerpt, image := excerptAndImage(`<p><img src="https://img.example.com/a.jpg" alt="">
		Shares of <b>NVIDIA</b> rose   sharply.</p><p>More inside.</p>`)
	assert.Equal(t, "Shares of NVIDIA rose sharply.More inside.", excerpt)
	assert.Equal(t, "https://img.example.com/a.jpg", image)

	excerpt, image = excerptAndImage("")
	assert.Empty(t, excerpt)
	assert.Empty(t, image)

	long := "<p>" + strings.Repeat("word ", 200) + "</p>"
	excerpt, _ = excerptAndImage(long)
	assert.True(t, strings.HasSuffix(excerpt, "..."))
	assert.LessOrEqual(t, len([]rune(excerpt)), maxExcerptLength+3)
}

func TestDetectTickers(t *testing.T) {
	known := map[string]bool{"AAPL": true, "NVDA": true, "TSLA": true}

	assert.Equal(t, []string{"TSLA", "NVDA", "AAPL"}, detectTickers("$TSLA slides while NVDA and AAPL climb; NVDA leads", known))
	assert.Nil(t, detectTickers("THE CEO said GDP is fine", known))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		feedCategory string
		item         *gofeed.Item
		tickers      []string
		want         entity.NewsCategory
	}{
		{"feed category wins", "crypto", &gofeed.Item{Title: "Fed holds rates"}, nil, entity.CategoryCrypto},
		{"item category", "", &gofeed.Item{Title: "x", Categories: []string{"Economy"}}, nil, entity.CategoryEconomy},
		{"crypto keyword", "", &gofeed.Item{Title: "Bitcoin tops $70,000"}, nil, entity.CategoryCrypto},
		{"economy keyword", "", &gofeed.Item{Title: "Inflation cools in March"}, nil, entity.CategoryEconomy},
		{"stocks keyword", "", &gofeed.Item{Title: "Apple shares jump after earnings"}, nil, entity.CategoryStocks},
		{"ticker only", "", &gofeed.Item{Title: "AAPL unveils a new phone"}, []string{"AAPL"}, entity.CategoryStocks},
		{"fallback", "general", &gofeed.Item{Title: "Weather update"}, nil, entity.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.feedCategory, tt.item, "", tt.tickers))
		})
	}
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "Reuters", sourceName("Reuters", &gofeed.Feed{Title: "Feed"}, "https://x.com/a"))
	assert.Equal(t, "Feed", sourceName("", &gofeed.Feed{Title: "Feed"}, "https://x.com/a"))
	assert.Equal(t, "news.example.com", sourceName("", nil, "https://www.news.example.com/a"))
}

func TestHashIdentifier(t *testing.T) {
	a := &gofeed.Item{Link: "https://x.com/a", Published: "Thu, 15 Feb 2024 10:00:00 GMT"}
	b := &gofeed.Item{Link: "https://x.com/a", Published: "Thu, 15 Feb 2024 11:00:00 GMT"}

	assert.Len(t, hashIdentifier(a), 32)
	assert.Equal(t, hashIdentifier(a), hashIdentifier(&gofeed.Item{Link: a.Link, Published: a.Published}))
	assert.NotEqual(t, hashIdentifier(a), hashIdentifier(b))
}
