package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/utils"
)

// maxMessageLen stays under Telegram's 4096 character limit.
const maxMessageLen = 4090

// MarketDigest is the content of the end-of-day summary.
type MarketDigest struct {
	Date    time.Time
	Indices []entity.MarketIndex
	Gainers []entity.Security
	Losers  []entity.Security
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escape protects free text from the legacy Markdown parser.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

func changeIcon(v float64) string {
	switch {
	case v > 0:
		return "🟢"
	case v < 0:
		return "🔴"
	default:
		return "⚪"
	}
}

// FormatMarketDigest formats the digest into one or more Markdown messages.
func FormatMarketDigest(d MarketDigest) []string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("📊 *Market Digest* - %s\n\n", d.Date.Format("Mon, Jan 2 2006")))

	if len(d.Indices) > 0 {
		builder.WriteString("🏛 *Indices*\n")
		for _, idx := range d.Indices {
			builder.WriteString(fmt.Sprintf("%s %s: %.2f (%s)\n", changeIcon(idx.ChangePercent), escape(idx.Name), idx.Value, utils.FormatPercent(idx.ChangePercent)))
		}
		builder.WriteString("\n")
	}

	writeMovers := func(title string, movers []entity.Security) {
		builder.WriteString(title)
		if len(movers) == 0 {
			builder.WriteString("_No data_\n\n")
			return
		}
		for i, s := range movers {
			builder.WriteString(fmt.Sprintf("%d. `%s` %s $%.2f (%s)\n", i+1, s.Symbol, escape(s.Name), s.Price, utils.FormatPercent(s.ChangePercent)))
		}
		builder.WriteString("\n")
	}
	writeMovers("🚀 *Top Gainers*\n", d.Gainers)
	writeMovers("📉 *Top Losers*\n", d.Losers)

	return splitMessage(builder.String(), "📊 *Market Digest (cont.)*\n\n")
}

// FormatNewsHeadlines formats newly stored articles as a headline list.
func FormatNewsHeadlines(articles []entity.NewsArticle) []string {
	if len(articles) == 0 {
		return []string{"📰 No new headlines."}
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("📰 *%d New Headlines*\n\n", len(articles)))
	for _, a := range articles {
		builder.WriteString(fmt.Sprintf("• *%s* - %s", escape(a.Title), escape(a.Source)))
		if len(a.Tickers) > 0 {
			builder.WriteString(fmt.Sprintf(" `%s`", strings.Join(a.Tickers, " ")))
		}
		builder.WriteString(fmt.Sprintf("\n  _%s_\n", a.Category))
	}

	return splitMessage(builder.String(), "📰 *New Headlines (cont.)*\n\n")
}

// splitMessage breaks text on line boundaries into parts no longer than
// maxMessageLen, prefixing every part after the first with header.
func splitMessage(text, header string) []string {
	if len(text) <= maxMessageLen {
		return []string{text}
	}

	var (
		parts   []string
		current strings.Builder
	)
	for _, line := range strings.SplitAfter(text, "\n") {
		if current.Len()+len(line) > maxMessageLen && current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
			current.WriteString(header)
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
