package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"golang-stock-dashboard/internal/ingestion/config"
	"golang-stock-dashboard/internal/ingestion/repository"
	"golang-stock-dashboard/internal/ingestion/service"
	"golang-stock-dashboard/pkg/cache"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/postgres"
	"golang-stock-dashboard/pkg/redis"
	"golang-stock-dashboard/pkg/telegram"
	"golang-stock-dashboard/pkg/utils"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the news ingestion and market digest scheduler",
	Run:   runServe,
}

var runCmd = &cobra.Command{
	Use:       "run [news|digest]",
	Short:     "Runs a single ingestion job and exits",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"news", "digest"},
	Run:       runOnce,
}

type app struct {
	cfg       *config.Config
	logger    *logger.Logger
	location  *time.Location
	news      service.NewsIngestionService
	digest    service.MarketDigestService
	closeFunc func()
}

func setup() *app {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	location, err := utils.LoadLocation(cfg.Ingestion.Timezone)
	if err != nil {
		appLogger.Fatal("Invalid ingestion timezone", logger.ErrorField(err))
	}

	// Initialize database
	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}

	// Initialize Redis
	var redisClient *goredis.Client
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		redisClient = client.Client
	} else {
		appLogger.Warn("Redis disabled, dashboard news caches will not be invalidated")
	}
	newsCache := cache.New(cache.Config{
		DefaultExpiration: cfg.Cache.DefaultExpiration,
		CleanupInterval:   cfg.Cache.CleanupInterval,
	}, redisClient)

	// Initialize notifier
	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram bot", logger.ErrorField(err))
		}
	} else {
		notifier = telegram.NewLogNotifier(appLogger)
	}

	// Initialize repositories
	newsRepo := repository.NewNewsRepository(db.DB)
	marketRepo := repository.NewMarketRepository(db.DB)

	// Initialize services
	ing := cfg.Ingestion
	newsSvc := service.NewNewsIngestionService(
		cfg.Feeds,
		ing,
		service.NewFeedSource(ing.FetchTimeout),
		service.NewArticleFetcher(ing.FetchTimeout, ing.MaxRequestPerMinute, appLogger),
		newsRepo,
		marketRepo,
		newsCache,
		notifier,
		appLogger,
	)
	digestSvc := service.NewMarketDigestService(marketRepo, notifier, cfg.Digest.TopN, location, appLogger)

	return &app{
		cfg:      cfg,
		logger:   appLogger,
		location: location,
		news:     newsSvc,
		digest:   digestSvc,
		closeFunc: func() {
			if redisClient != nil {
				_ = redisClient.Close()
			}
			if sqlDB, err := db.DB.DB(); err == nil {
				_ = sqlDB.Close()
			}
			_ = appLogger.Sync()
		},
	}
}

func (a *app) runNews(ctx context.Context) error {
	report, err := a.news.Run(ctx)
	if err != nil {
		return err
	}
	for _, feed := range report.Feeds {
		a.logger.Info("Feed ingested",
			logger.StringField("url", feed.URL),
			logger.StringField("status", feed.Status),
			logger.IntField("fetched", feed.Fetched),
			logger.IntField("stored", feed.Stored),
			logger.IntField("skipped", feed.Skipped),
		)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := setup()
	defer a.closeFunc()

	a.logger.Info("Starting Ingestion Service",
		logger.Field("name", a.cfg.App.Name),
		logger.IntField("feeds", len(a.cfg.Feeds)),
	)

	scheduler := service.NewScheduler(a.location, a.logger)
	if err := scheduler.Register(ctx, "news-ingestion", a.cfg.Ingestion.NewsCron, a.runNews); err != nil {
		a.logger.Fatal("Failed to register news job", logger.ErrorField(err))
	}
	if err := scheduler.Register(ctx, "market-digest", a.cfg.Ingestion.DigestCron, a.digest.Run); err != nil {
		a.logger.Fatal("Failed to register digest job", logger.ErrorField(err))
	}

	if a.cfg.Ingestion.RunOnStart {
		if err := a.runNews(ctx); err != nil {
			a.logger.Error("Initial news ingestion failed", logger.ErrorField(err))
		}
	}

	scheduler.Start(ctx)
	a.logger.Info("Ingestion service exiting")
}

func runOnce(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := setup()
	defer a.closeFunc()

	var err error
	switch args[0] {
	case "news":
		err = a.runNews(ctx)
	case "digest":
		err = a.digest.Run(ctx)
	}
	if err != nil {
		a.logger.Error("Job failed", logger.StringField("job", args[0]), logger.ErrorField(err))
		a.closeFunc()
		os.Exit(1)
	}
}

func main() {
	rootCmd := &cobra.Command{Use: "ingestion-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-ingestion.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing ingestion-service CLI: %s\n", err)
		os.Exit(1)
	}
}
