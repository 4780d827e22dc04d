// Package views implements the derived views the dashboard renders from
// the raw collections: movers ranking, news filtering and entity selection.
package views

import (
	"sort"
	"strings"

	"golang-stock-dashboard/internal/core"
)

// Direction selects which end of the ranking to return.
type Direction string

const (
	Gainers Direction = "gainers"
	Losers  Direction = "losers"
)

// ParseDirection maps a query value onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Gainers, Losers:
		return d, nil
	default:
		return "", core.InvalidInput("unknown direction %q, want gainers or losers", s)
	}
}

// Changer is anything carrying a signed percent change.
type Changer interface {
	PercentChange() float64
}

// RankByChange returns the top n items ordered by percent change:
// descending for Gainers, ascending for Losers. Ties keep their input
// order. The input slice is not modified.
func RankByChange[T Changer](items []T, dir Direction, n int) ([]T, error) {
	if n < 0 {
		return nil, core.InvalidInput("n must not be negative, got %d", n)
	}
	if dir != Gainers && dir != Losers {
		return nil, core.InvalidInput("unknown direction %q", dir)
	}

	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		if dir == Gainers {
			return ranked[i].PercentChange() > ranked[j].PercentChange()
		}
		return ranked[i].PercentChange() < ranked[j].PercentChange()
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
