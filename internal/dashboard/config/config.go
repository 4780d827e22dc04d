package config

import (
	"time"

	"golang-stock-dashboard/internal/core/series"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/config"
)

// DataSource selects where the dashboard reads its collections from.
type DataSource struct {
	Driver      string `mapstructure:"driver"`
	FixturePath string `mapstructure:"fixture_path"`
}

// Chart holds the series generator parameters.
type Chart struct {
	PastDays      int           `mapstructure:"past_days"`
	FutureDays    int           `mapstructure:"future_days"`
	MaxDays       int           `mapstructure:"max_days"`
	PriceNoise    float64       `mapstructure:"price_noise"`
	ScaleFloor    float64       `mapstructure:"scale_floor"`
	ForecastNoise float64       `mapstructure:"forecast_noise"`
	DefaultDrift  float64       `mapstructure:"default_drift"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

// Options converts the chart block into generator options.
func (c Chart) Options() series.Options {
	return series.Options{
		PastDays:      c.PastDays,
		FutureDays:    c.FutureDays,
		PriceNoise:    c.PriceNoise,
		ScaleFloor:    c.ScaleFloor,
		ForecastNoise: c.ForecastNoise,
		DefaultDrift:  c.DefaultDrift,
	}
}

// Cache holds the in-process cache settings.
type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// Market describes the trading session used for the market status.
type Market struct {
	Timezone  string `mapstructure:"timezone"`
	OpenTime  string `mapstructure:"open_time"`
	CloseTime string `mapstructure:"close_time"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	DataSource DataSource      `mapstructure:"data_source"`
	Chart      Chart           `mapstructure:"chart"`
	Cache      Cache           `mapstructure:"cache"`
	Market     Market          `mapstructure:"market"`
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	return Config{
		App:        config.App{Name: "dashboard-service", Env: "development"},
		Logger:     config.Logger{Level: "info", Encoding: "json"},
		API:        config.API{Port: 8080},
		DataSource: DataSource{Driver: common.DataSourceFixture, FixturePath: "fixtures/market.yaml"},
		Chart: Chart{
			PastDays:      series.DefaultPastDays,
			FutureDays:    series.DefaultFutureDays,
			MaxDays:       365,
			PriceNoise:    series.DefaultPriceNoise,
			ScaleFloor:    series.DefaultScaleFloor,
			ForecastNoise: series.DefaultForecastNoise,
			DefaultDrift:  series.DefaultDrift,
			CacheTTL:      10 * time.Minute,
		},
		Cache:  Cache{DefaultExpiration: 5 * time.Minute, CleanupInterval: 10 * time.Minute},
		Market: Market{Timezone: "America/New_York", OpenTime: "09:30", CloseTime: "16:00"},
	}
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
