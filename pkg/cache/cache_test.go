package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Symbol string
	Prices []float64
}

func TestLocalOnlyRoundTrip(t *testing.T) {
	c := New(Config{}, nil)
	ctx := context.Background()

	var got payload
	assert.ErrorIs(t, c.Get(ctx, "chart:AAPL", &got), ErrMiss)

	want := payload{Symbol: "AAPL", Prices: []float64{185.92, 186.1}}
	require.NoError(t, c.Set(ctx, "chart:AAPL", want, time.Minute))
	require.NoError(t, c.Get(ctx, "chart:AAPL", &got))
	assert.Equal(t, want, got)
}

func TestDeletePrefix(t *testing.T) {
	c := New(Config{}, nil)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "news:list:all", []string{"a"}, time.Minute))
	require.NoError(t, c.Set(ctx, "news:list:crypto", []string{"b"}, time.Minute))
	require.NoError(t, c.Set(ctx, "chart:NVDA", []string{"c"}, time.Minute))

	require.NoError(t, c.DeletePrefix(ctx, "news:"))

	var out []string
	assert.ErrorIs(t, c.Get(ctx, "news:list:all", &out), ErrMiss)
	assert.ErrorIs(t, c.Get(ctx, "news:list:crypto", &out), ErrMiss)
	require.NoError(t, c.Get(ctx, "chart:NVDA", &out))
	assert.Equal(t, []string{"c"}, out)
}

func TestExpiredEntryIsMiss(t *testing.T) {
	c := New(Config{CleanupInterval: time.Millisecond}, nil)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var v int
	assert.ErrorIs(t, c.Get(ctx, "k", &v), ErrMiss)
}
