package service

import (
	"context"
	"testing"

	"golang-stock-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_Register(t *testing.T) {
	s := NewScheduler(nil, logger.NewNop())
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Register(context.Background(), "news", "*/15 * * * *", noop))
	require.NoError(t, s.Register(context.Background(), "digest", "", noop))
	assert.Error(t, s.Register(context.Background(), "broken", "not a cron", noop))
	assert.Equal(t, 1, s.Entries())
}

func TestScheduler_StartStopsOnCancel(t *testing.T) {
	s := NewScheduler(nil, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()
	cancel()
	<-done
}
