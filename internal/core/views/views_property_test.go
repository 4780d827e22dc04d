package views

import (
	"fmt"
	"testing"
	"time"

	"golang-stock-dashboard/internal/entity"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func toSecurities(changes []float64) []entity.Security {
	out := make([]entity.Security, len(changes))
	for i, c := range changes {
		out[i] = entity.Security{Symbol: fmt.Sprintf("S%d", i), ChangePercent: c}
	}
	return out
}

func TestProperty_RankByChange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())
	properties := gopter.NewProperties(parameters)

	changes := gen.SliceOf(gen.Float64Range(-10, 10))

	properties.Property("result length is min(n, len)", prop.ForAll(
		func(cs []float64, n int) bool {
			got, err := RankByChange(toSecurities(cs), Gainers, n)
			want := n
			if len(cs) < n {
				want = len(cs)
			}
			return err == nil && len(got) == want
		},
		changes,
		gen.IntRange(0, 20),
	))

	properties.Property("gainers are ordered and dominate the rest", prop.ForAll(
		func(cs []float64, n int) bool {
			got, err := RankByChange(toSecurities(cs), Gainers, n)
			if err != nil {
				return false
			}
			for i := 1; i < len(got); i++ {
				if got[i-1].ChangePercent < got[i].ChangePercent {
					return false
				}
			}
			if len(got) == 0 {
				return true
			}
			floor := got[len(got)-1].ChangePercent
			picked := map[string]bool{}
			for _, s := range got {
				picked[s.Symbol] = true
			}
			for _, s := range toSecurities(cs) {
				if !picked[s.Symbol] && s.ChangePercent > floor {
					return false
				}
			}
			return true
		},
		changes,
		gen.IntRange(0, 20),
	))

	properties.Property("losers are the reverse ordering", prop.ForAll(
		func(cs []float64) bool {
			got, err := RankByChange(toSecurities(cs), Losers, len(cs))
			if err != nil || len(got) != len(cs) {
				return false
			}
			for i := 1; i < len(got); i++ {
				if got[i-1].ChangePercent > got[i].ChangePercent {
					return false
				}
			}
			return true
		},
		changes,
	))

	properties.Property("gainers and losers are disjoint when 2n <= len", prop.ForAll(
		func(cs []float64) bool {
			n := len(cs) / 2
			gainers, err := RankByChange(toSecurities(cs), Gainers, n)
			if err != nil {
				return false
			}
			losers, err := RankByChange(toSecurities(cs), Losers, n)
			if err != nil {
				return false
			}
			seen := map[string]bool{}
			for _, s := range gainers {
				seen[s.Symbol] = true
			}
			for _, s := range losers {
				if seen[s.Symbol] {
					return false
				}
			}
			return true
		},
		changes,
	))

	properties.TestingRun(t)
}

func TestProperty_FilterByCategory(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	categories := []entity.NewsCategory{entity.CategoryStocks, entity.CategoryCrypto, entity.CategoryEconomy, entity.CategoryGeneral}

	properties.Property("filtered articles are an ordered subsequence of one category", prop.ForAll(
		func(picks []int, filter int) bool {
			articles := make([]entity.NewsArticle, len(picks))
			for i, p := range picks {
				articles[i] = entity.NewsArticle{ID: uint(i + 1), Category: categories[p]}
			}
			want := categories[filter]
			got := FilterByCategory(articles, want)

			count := 0
			for _, a := range articles {
				if a.Category == want {
					count++
				}
			}
			if len(got) != count {
				return false
			}
			for i, a := range got {
				if a.Category != want || (i > 0 && got[i-1].ID >= a.ID) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(categories)-1)),
		gen.IntRange(0, len(categories)-1),
	))

	properties.TestingRun(t)
}
