package service

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const maxExcerptLength = 280

// hashIdentifier identifies a feed item across runs.
func hashIdentifier(item *gofeed.Item) string {
	sum := md5.Sum([]byte(item.Link + "|" + item.Published))
	return hex.EncodeToString(sum[:])
}

// excerptAndImage pulls plain text and the first image out of an item
// description, which feeds commonly ship as an HTML fragment.
func excerptAndImage(fragment string) (string, string) {
	if strings.TrimSpace(fragment) == "" {
		return "", ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return utils.Truncate(utils.CollapseSpaces(fragment), maxExcerptLength), ""
	}

	image, _ := doc.Find("img[src]").First().Attr("src")
	text := utils.CollapseSpaces(utils.CleanToValidUTF8(doc.Text()))
	return utils.Truncate(text, maxExcerptLength), image
}

// itemImage prefers the feed-level image, then media enclosures.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// sourceName falls back to the link host when the feed has no name.
func sourceName(configured string, feed *gofeed.Feed, link string) string {
	if configured != "" {
		return configured
	}
	if feed != nil && feed.Title != "" {
		return feed.Title
	}
	if u, err := url.Parse(link); err == nil {
		return strings.TrimPrefix(u.Hostname(), "www.")
	}
	return ""
}

var (
	cashtagPattern = regexp.MustCompile(`\$([A-Z]{1,5})\b`)
	wordPattern    = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
)

// detectTickers returns the known symbols mentioned in text, either as a
// cashtag or as a bare upper-case word, in order of first mention.
func detectTickers(text string, known map[string]bool) []string {
	seen := map[string]bool{}
	var tickers []string
	add := func(symbol string) {
		if known[symbol] && !seen[symbol] {
			seen[symbol] = true
			tickers = append(tickers, symbol)
		}
	}
	for _, m := range cashtagPattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range wordPattern.FindAllString(text, -1) {
		add(m)
	}
	return tickers
}

var categoryKeywords = []struct {
	category entity.NewsCategory
	words    []string
}{
	{entity.CategoryCrypto, []string{"bitcoin", "ethereum", "crypto", "blockchain", "solana", "defi", "stablecoin", "token"}},
	{entity.CategoryEconomy, []string{"federal reserve", "the fed", "inflation", "interest rate", "gdp", "employment", "jobs report", "treasury", "oil prices", "economy", "tariff"}},
	{entity.CategoryStocks, []string{"shares", "stock", "earnings", "nasdaq", "s&p 500", "dow", "ipo", "market cap", "quarterly"}},
}

// classify picks a category: the feed's configured one, then the item's
// own categories, then keyword matches on the title and excerpt, then
// tickers, and finally general.
func classify(feedCategory string, item *gofeed.Item, excerpt string, tickers []string) entity.NewsCategory {
	if c := entity.ParseNewsCategory(feedCategory); c != entity.CategoryGeneral {
		return c
	}
	for _, raw := range item.Categories {
		if c := entity.ParseNewsCategory(raw); c != entity.CategoryGeneral {
			return c
		}
	}

	text := strings.ToLower(item.Title + " " + excerpt)
	for _, group := range categoryKeywords {
		for _, w := range group.words {
			if strings.Contains(text, w) {
				return group.category
			}
		}
	}
	if len(tickers) > 0 {
		return entity.CategoryStocks
	}
	return entity.CategoryGeneral
}
