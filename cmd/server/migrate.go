package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ems-backend/internal/cache"
	"ems-backend/internal/storage"
)

var seedServicesPath string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Apply the embedded schema. With --seed-services, also append the catalog
entries from a JSON array file and drop the cached catalog.

Examples:
  ems migrate
  ems migrate --seed-services services.json`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&seedServicesPath, "seed-services", "", "JSON array of service catalog entries to insert")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := storage.Open(ctx, cfg.DatabaseURL, dbConnectAttempts, dbConnectWait)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	store := storage.NewStorage(db)
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("schema up to date")

	if seedServicesPath == "" {
		return nil
	}

	var inv cacheInvalidator
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable; cached catalog expires on its own", zap.Error(err))
		} else {
			defer redisCache.Close()
			inv = redisCache
		}
	}

	n, err := seedServices(ctx, seedServicesPath, store, inv)
	if err != nil {
		return err
	}
	log.Info("services seeded", zap.Int("count", n), zap.String("file", seedServicesPath))
	return nil
}
