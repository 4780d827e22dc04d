package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	dashboardconfig "golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	configPath     string
	migrationsPath string
)

func loadDatabaseConfig() (*dashboardconfig.Config, postgres.Config) {
	cfg, err := dashboardconfig.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg, postgres.Config{
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
	}
}

func runMigrations(direction string) {
	_, dbCfg := loadDatabaseConfig()

	m, err := migrate.New("file://"+migrationsPath, dbCfg.URL())
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	var migrationErr error
	switch direction {
	case "up":
		migrationErr = m.Up()
	case "down":
		migrationErr = m.Steps(-1)
	}

	if migrationErr != nil && !errors.Is(migrationErr, migrate.ErrNoChange) {
		log.Fatalf("Migration failed: %v", migrationErr)
	}
	if direction == "up" {
		fmt.Println("Applied migrations successfully.")
	} else {
		fmt.Println("Reverted last migration successfully.")
	}

	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("Migration source error on close: %v\n", srcErr)
	}
	if dbErr != nil {
		log.Printf("Migration database error on close: %v\n", dbErr)
	}
}

// seed loads the fixture data set into Postgres. The set is validated by
// LoadDataSet before anything is written, so a bad row aborts the whole
// seed. Quotes, indices and predictions are upserted by symbol; news is
// inserted once per fixture id.
func seed() error {
	cfg, dbCfg := loadDatabaseConfig()

	dataSet, err := repository.LoadDataSet(cfg.DataSource.FixturePath, time.Now())
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(dbCfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{Columns: []clause.Column{{Name: "symbol"}}, UpdateAll: true}

		if securities := dataSet.Securities(); len(securities) > 0 {
			if err := tx.Clauses(upsert).Create(&securities).Error; err != nil {
				return fmt.Errorf("failed to seed securities: %w", err)
			}
		}
		if indices := dataSet.Indices(); len(indices) > 0 {
			if err := tx.Clauses(upsert).Create(&indices).Error; err != nil {
				return fmt.Errorf("failed to seed market indices: %w", err)
			}
		}
		if predictions := dataSet.Predictions(); len(predictions) > 0 {
			if err := tx.Clauses(upsert).Create(&predictions).Error; err != nil {
				return fmt.Errorf("failed to seed predictions: %w", err)
			}
		}

		news := dataSet.News()
		for i := range news {
			news[i].HashIdentifier = fmt.Sprintf("fixture-%d", news[i].ID)
			news[i].ID = 0
		}
		if len(news) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "hash_identifier"}},
				DoNothing: true,
			}).Create(&news).Error; err != nil {
				return fmt.Errorf("failed to seed news: %w", err)
			}
		}
		return nil
	})
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all available database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("up")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last database migration",
	Run: func(cmd *cobra.Command, args []string) {
		runMigrations("down")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the fixture data set into the database",
	Run: func(cmd *cobra.Command, args []string) {
		if err := seed(); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		fmt.Println("Seeded fixture data successfully.")
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "migrate"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "Directory holding the migration files")

	rootCmd.AddCommand(upCmd, downCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing migrate CLI: %s\n", err)
		os.Exit(1)
	}
}
