package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ems-backend/internal/models"
)

func (s *Storage) ListServices(ctx context.Context) ([]models.Record, error) {
	return s.listRecords(ctx, tableServices, `created_at, id`)
}

// ListWorks returns work entries newest first.
func (s *Storage) ListWorks(ctx context.Context) ([]models.Record, error) {
	return s.listRecords(ctx, tableWorks, `created_at DESC, id`)
}

func (s *Storage) InsertWork(ctx context.Context, body models.Document) (models.InsertResult, error) {
	return s.insertRecord(ctx, s.db, tableWorks, body)
}

func (s *Storage) ListPayments(ctx context.Context) ([]models.Record, error) {
	return s.listRecords(ctx, tablePayments, `created_at, id`)
}

func (s *Storage) InsertPayment(ctx context.Context, body models.Document) (models.InsertResult, error) {
	return s.insertRecord(ctx, s.db, tablePayments, body)
}

// SeedServices appends catalog entries in one transaction; there is no HTTP
// route for it.
func (s *Storage) SeedServices(ctx context.Context, docs []models.Document) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	for i, doc := range docs {
		if _, err := s.insertRecord(ctx, tx, tableServices, doc); err != nil {
			return 0, fmt.Errorf("seed service %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (s *Storage) listRecords(ctx context.Context, table, orderBy string) ([]models.Record, error) {
	records := []models.Record{}
	query := `SELECT id, body, created_at FROM ` + table + ` ORDER BY ` + orderBy
	if err := s.db.SelectContext(ctx, &records, query); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Storage) insertRecord(ctx context.Context, ex sqlx.ExecerContext, table string, body models.Document) (models.InsertResult, error) {
	rec := models.NewRecord(body, s.now())
	rec.ID = uuid.New().String()

	query := `INSERT INTO ` + table + ` (id, body, created_at) VALUES ($1, $2, $3)`
	if _, err := ex.ExecContext(ctx, query, rec.ID, rec.Body, rec.CreatedAt); err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: rec.ID}, nil
}
