package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNewsFilter(t *testing.T) {
	tests := []struct {
		in    string
		want  NewsCategory
		known bool
	}{
		{"", CategoryAll, true},
		{" All ", CategoryAll, true},
		{"CRYPTO", CategoryCrypto, true},
		{"general", CategoryGeneral, true},
		{"foo", NewsCategory("foo"), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseNewsFilter(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, got.Known())
		})
	}
}

func TestParseNewsCategory_FallsBackToGeneral(t *testing.T) {
	assert.Equal(t, CategoryStocks, ParseNewsCategory(" Stocks"))
	assert.Equal(t, CategoryGeneral, ParseNewsCategory("sports"))
	assert.Equal(t, CategoryGeneral, ParseNewsCategory("all"))
}
