package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ems-backend/internal/models"
)

const userColumns = `id, email, designation, status, fired, attributes, created_at`

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := s.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := s.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user. A duplicate email yields ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) (models.InsertResult, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Designation == "" {
		user.Designation = models.DesignationEmployee
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now().UTC()
	}

	query := `
		INSERT INTO users (id, email, designation, status, fired, attributes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query, user.ID, user.Email, user.Designation,
		user.Status, user.Fired, user.Attributes, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.InsertResult{}, ErrEmailTaken
		}
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

// ToggleUserStatus flips the HR-verified status flag.
func (s *Storage) ToggleUserStatus(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.patchUser(ctx, id, `status = NOT u.status`, `TRUE`)
}

// PromoteToHR sets the designation to hr.
func (s *Storage) PromoteToHR(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.patchUser(ctx, id, `designation = 'hr'`, `target.designation <> 'hr'`)
}

// MarkFired sets the fired flag.
func (s *Storage) MarkFired(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.patchUser(ctx, id, `fired = TRUE`, `NOT target.fired`)
}

// patchUser applies set to one row; changed is evaluated against the row's
// previous values to report modifiedCount.
func (s *Storage) patchUser(ctx context.Context, id, set, changed string) (models.UpdateResult, error) {
	id, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	query := fmt.Sprintf(`
		WITH target AS (
			SELECT id, designation, status, fired FROM users WHERE id = $1 FOR UPDATE
		)
		UPDATE users u SET %s
		FROM target
		WHERE u.id = target.id
		RETURNING %s
	`, set, changed)

	var modified bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&modified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UpdateResult{}, ErrNotFound
		}
		return models.UpdateResult{}, err
	}

	res := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if modified {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	id, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}
