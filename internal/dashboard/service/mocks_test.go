package service

import (
	"context"
	"testing"
	"time"

	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/cache"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2024, time.February, 15, 15, 0, 0, 0, time.UTC)

func fixtureRepos(t *testing.T) repository.Repositories {
	t.Helper()
	ds, err := repository.LoadDataSet("../../../fixtures/market.yaml", fixtureNow)
	require.NoError(t, err)
	return ds.Repositories()
}

func localCache() cache.Cache {
	return cache.New(cache.Config{}, nil)
}

type mockSecurityRepository struct {
	mock.Mock
}

func (m *mockSecurityRepository) List(ctx context.Context) ([]entity.Security, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]entity.Security); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSecurityRepository) GetBySymbol(ctx context.Context, symbol string) (*entity.Security, error) {
	args := m.Called(ctx, symbol)
	if v, ok := args.Get(0).(*entity.Security); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPredictionRepository struct {
	mock.Mock
}

func (m *mockPredictionRepository) List(ctx context.Context) ([]entity.Prediction, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]entity.Prediction); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPredictionRepository) GetBySymbol(ctx context.Context, symbol string) (*entity.Prediction, error) {
	args := m.Called(ctx, symbol)
	if v, ok := args.Get(0).(*entity.Prediction); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNewsRepository struct {
	mock.Mock
}

func (m *mockNewsRepository) List(ctx context.Context) ([]entity.NewsArticle, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]entity.NewsArticle); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepository) GetByID(ctx context.Context, id uint) (*entity.NewsArticle, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*entity.NewsArticle); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
