package service

import (
	"context"
	"testing"

	"golang-stock-dashboard/internal/core"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPredictionService_Top(t *testing.T) {
	svc := NewPredictionService(fixtureRepos(t).Predictions, logger.NewNop())

	top, err := svc.Top(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "NVDA", top[0].Symbol)
	assert.Equal(t, "AAPL", top[1].Symbol)
	assert.Equal(t, "MSFT", top[2].Symbol)

	all, err := svc.Top(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "TSLA", all[4].Symbol)

	_, err = svc.Top(context.Background(), -1)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestPredictionService_TopKeepsListOrderOnTies(t *testing.T) {
	repo := new(mockPredictionRepository)
	repo.On("List", mock.Anything).Return([]entity.Prediction{
		{Symbol: "A", Confidence: 70},
		{Symbol: "B", Confidence: 90},
		{Symbol: "C", Confidence: 70},
	}, nil)

	svc := NewPredictionService(repo, logger.NewNop())
	top, err := svc.Top(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, []string{top[0].Symbol, top[1].Symbol, top[2].Symbol})
}

func TestPredictionService_DirectionFollowsTarget(t *testing.T) {
	repo := new(mockPredictionRepository)
	repo.On("GetBySymbol", mock.Anything, "XYZ").Return(&entity.Prediction{
		Symbol:       "XYZ",
		CurrentPrice: 100,
		TargetPrice:  90,
		Direction:    entity.DirectionBullish,
	}, nil)
	repo.On("GetBySymbol", mock.Anything, "FLAT").Return(&entity.Prediction{
		Symbol:       "FLAT",
		CurrentPrice: 100,
		TargetPrice:  100,
		Direction:    entity.DirectionBearish,
	}, nil)

	svc := NewPredictionService(repo, logger.NewNop())

	p, err := svc.Get(context.Background(), "xyz")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionBearish, p.Direction)

	p, err = svc.Get(context.Background(), "FLAT")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionBearish, p.Direction)
}

func TestPredictionService_Get(t *testing.T) {
	svc := NewPredictionService(fixtureRepos(t).Predictions, logger.NewNop())

	p, err := svc.Get(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionBearish, p.Direction)
	assert.Equal(t, 74, p.Confidence)

	_, err = svc.Get(context.Background(), "GOOGL")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
