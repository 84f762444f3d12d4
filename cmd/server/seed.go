package main

import (
	"context"
	"fmt"
	"os"

	"ems-backend/internal/cache"
	"ems-backend/internal/models"
)

type serviceSeeder interface {
	SeedServices(ctx context.Context, docs []models.Document) (int, error)
}

type cacheInvalidator interface {
	Delete(ctx context.Context, key string) error
}

// seedServices loads a JSON array of catalog entries from path and drops the
// cached catalog so readers see the new entries. inv may be nil.
func seedServices(ctx context.Context, path string, store serviceSeeder, inv cacheInvalidator) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	docs, err := models.DecodeDocuments(data)
	if err != nil {
		return 0, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	n, err := store.SeedServices(ctx, docs)
	if err != nil {
		return 0, err
	}
	if inv != nil {
		if err := inv.Delete(ctx, cache.ServicesKey); err != nil {
			return n, fmt.Errorf("invalidate services cache: %w", err)
		}
	}
	return n, nil
}
