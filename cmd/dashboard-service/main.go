package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"golang-stock-dashboard/internal/dashboard/config"
	delivery "golang-stock-dashboard/internal/dashboard/delivery/http"
	_ "golang-stock-dashboard/internal/dashboard/docs"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/cache"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/postgres"
	"golang-stock-dashboard/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("data_source", cfg.DataSource.Driver),
	)

	// Initialize repositories
	var repos repository.Repositories
	switch cfg.DataSource.Driver {
	case common.DataSourcePostgres:
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
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		repos = repository.NewPostgresRepositories(db.DB)
	case common.DataSourceFixture, "":
		dataSet, err := repository.LoadDataSet(cfg.DataSource.FixturePath, time.Now())
		if err != nil {
			appLogger.Fatal("Failed to load fixture data set", logger.ErrorField(err))
		}
		repos = dataSet.Repositories()
	default:
		appLogger.Fatal("Unknown data source driver", logger.StringField("driver", cfg.DataSource.Driver))
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
		defer client.Close()
		redisClient = client.Client
	}
	appCache := cache.New(cache.Config{
		DefaultExpiration: cfg.Cache.DefaultExpiration,
		CleanupInterval:   cfg.Cache.CleanupInterval,
	}, redisClient)

	// Initialize services
	stockSvc := service.NewStockService(repos.Securities, appLogger)
	chartSvc := service.NewChartService(repos.Securities, repos.Predictions, appCache, cfg.Chart, appLogger)
	predictionSvc := service.NewPredictionService(repos.Predictions, appLogger)
	newsSvc := service.NewNewsService(repos.News, appCache, cfg.Cache.DefaultExpiration, appLogger)
	marketSvc, err := service.NewMarketService(repos.Indices, repos.Securities, cfg.Market, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize market service", logger.ErrorField(err))
	}
	dashboardSvc := service.NewDashboardService(stockSvc, predictionSvc, marketSvc, chartSvc, appLogger)

	// Initialize Echo server
	e := delivery.NewRouter(delivery.Handlers{
		Stock:      delivery.NewStockHandler(stockSvc, chartSvc, appLogger),
		Prediction: delivery.NewPredictionHandler(predictionSvc, appLogger),
		News:       delivery.NewNewsHandler(newsSvc, appLogger),
		Market:     delivery.NewMarketHandler(marketSvc, appLogger),
		Dashboard:  delivery.NewDashboardHandler(dashboardSvc, cfg.App.Name, cfg.App.Version, appLogger),
	}, appLogger)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Stock Dashboard API
// @version 1.0
// @description Market overview, price charts, predictions and news for the stock dashboard.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
