package config

import (
	"time"

	"golang-stock-dashboard/pkg/config"
)

// Feed is one RSS source. Category, when set to a known value, is applied
// to every article of the feed.
type Feed struct {
	URL      string `mapstructure:"url"`
	Source   string `mapstructure:"source"`
	Category string `mapstructure:"category"`
}

// Ingestion holds the news ingestion settings.
type Ingestion struct {
	NewsCron            string        `mapstructure:"news_cron"`
	DigestCron          string        `mapstructure:"digest_cron"`
	Timezone            string        `mapstructure:"timezone"`
	MaxItemsPerFeed     int           `mapstructure:"max_items_per_feed"`
	MaxConcurrentFeeds  int           `mapstructure:"max_concurrent_feeds"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	FetchTimeout        time.Duration `mapstructure:"fetch_timeout"`
	MaxNewsAgeInDays    int           `mapstructure:"max_news_age_in_days"`
	BlacklistedDomains  []string      `mapstructure:"blacklisted_domains"`
	NotifyNewArticles   bool          `mapstructure:"notify_new_articles"`
	RunOnStart          bool          `mapstructure:"run_on_start"`
}

// Telegram holds configuration for the Telegram notifier. An empty bot
// token routes notifications to the log instead.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Digest holds the market digest settings.
type Digest struct {
	TopN int `mapstructure:"top_n"`
}

// Cache holds the in-process cache settings.
type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// Config holds the full configuration for the ingestion service.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	Cache     Cache           `mapstructure:"cache"`
	Feeds     []Feed          `mapstructure:"feeds"`
	Ingestion Ingestion       `mapstructure:"ingestion"`
	Telegram  Telegram        `mapstructure:"telegram"`
	Digest    Digest          `mapstructure:"digest"`
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	return Config{
		App:    config.App{Name: "ingestion-service", Env: "development"},
		Logger: config.Logger{Level: "info", Encoding: "json"},
		Cache:  Cache{DefaultExpiration: 5 * time.Minute, CleanupInterval: 10 * time.Minute},
		Ingestion: Ingestion{
			NewsCron:            "*/15 * * * *",
			DigestCron:          "30 16 * * 1-5",
			Timezone:            "America/New_York",
			MaxItemsPerFeed:     20,
			MaxConcurrentFeeds:  4,
			MaxRequestPerMinute: 30,
			FetchTimeout:        15 * time.Second,
			MaxNewsAgeInDays:    3,
		},
		Digest: Digest{TopN: 3},
	}
}

// Load loads the ingestion configuration from the given path.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
