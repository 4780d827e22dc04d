package service

import (
	"context"
	"testing"
	"time"

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDashboardService(t *testing.T, securities repository.SecurityRepository) DashboardService {
	repos := fixtureRepos(t)
	if securities == nil {
		securities = repos.Securities
	}
	cfg := config.Default()
	log := logger.NewNop()

	charts := newTestChartService(t, securities, repos.Predictions)
	market, err := NewMarketService(repos.Indices, securities, cfg.Market, log)
	require.NoError(t, err)
	svc := NewDashboardService(
		NewStockService(securities, log),
		NewPredictionService(repos.Predictions, log),
		market,
		charts,
		log,
	).(*dashboardService)
	svc.now = func() time.Time { return fixtureNow }
	return svc
}

func TestDashboardService_Overview(t *testing.T) {
	overview, err := newTestDashboardService(t, nil).Overview(context.Background())
	require.NoError(t, err)

	assert.Len(t, overview.Indices, 4)
	require.Len(t, overview.Predictions, 3)
	assert.Equal(t, "NVDA", overview.Predictions[0].Symbol)
	require.Len(t, overview.Gainers, 4)
	require.Len(t, overview.Losers, 4)
	assert.Equal(t, "NVDA", overview.Gainers[0].Symbol)
	assert.Equal(t, "TSLA", overview.Losers[0].Symbol)

	seen := map[string]bool{}
	for _, s := range overview.Gainers {
		seen[s.Symbol] = true
	}
	for _, s := range overview.Losers {
		assert.False(t, seen[s.Symbol], "%s is both gainer and loser", s.Symbol)
	}
}

func TestDashboardService_Selection(t *testing.T) {
	svc := newTestDashboardService(t, nil)

	tests := []struct {
		name          string
		symbol        string
		previous      string
		want          string
		hasPrediction bool
	}{
		{"exact match with prediction", "TSLA", "", "TSLA", true},
		{"exact match without prediction", "JPM", "AAPL", "JPM", false},
		{"unknown symbol falls back to first", "ZZZZ", "", "AAPL", true},
		{"empty symbol ignores previous", "", "META", "AAPL", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := svc.Selection(context.Background(), tt.symbol, tt.previous)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Stock.Symbol)
			if tt.hasPrediction {
				require.NotNil(t, sel.Prediction)
				assert.Equal(t, tt.want, sel.Prediction.Symbol)
			} else {
				assert.Nil(t, sel.Prediction)
			}
			require.NotNil(t, sel.Chart)
			assert.Equal(t, tt.want, sel.Chart.Symbol)
			assert.Len(t, sel.Chart.Points, 38)
		})
	}
}

func TestDashboardService_SelectionEmptyCollection(t *testing.T) {
	securities := new(mockSecurityRepository)
	securities.On("List", mock.Anything).Return([]entity.Security{}, nil)

	_, err := newTestDashboardService(t, securities).Selection(context.Background(), "AAPL", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
