package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"ems-backend/internal/cache"
	"ems-backend/internal/models"
	"ems-backend/internal/storage"
)

var errMockStore = errors.New("store unavailable")

// MockStore implements Store; unset funcs return zero values.
type MockStore struct {
	PingFunc             func(ctx context.Context) error
	ListServicesFunc     func(ctx context.Context) ([]models.Record, error)
	ListUsersFunc        func(ctx context.Context) ([]models.User, error)
	GetUserFunc          func(ctx context.Context, id string) (*models.User, error)
	GetUserByEmailFunc   func(ctx context.Context, email string) (*models.User, error)
	CreateUserFunc       func(ctx context.Context, user *models.User) (models.InsertResult, error)
	ToggleUserStatusFunc func(ctx context.Context, id string) (models.UpdateResult, error)
	PromoteToHRFunc      func(ctx context.Context, id string) (models.UpdateResult, error)
	MarkFiredFunc        func(ctx context.Context, id string) (models.UpdateResult, error)
	DeleteUserFunc       func(ctx context.Context, id string) (models.DeleteResult, error)
	ListWorksFunc        func(ctx context.Context) ([]models.Record, error)
	InsertWorkFunc       func(ctx context.Context, body models.Document) (models.InsertResult, error)
	ListPaymentsFunc     func(ctx context.Context) ([]models.Record, error)
	InsertPaymentFunc    func(ctx context.Context, body models.Document) (models.InsertResult, error)
}

func (m *MockStore) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockStore) ListServices(ctx context.Context) ([]models.Record, error) {
	if m.ListServicesFunc != nil {
		return m.ListServicesFunc(ctx)
	}
	return []models.Record{}, nil
}

func (m *MockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, storage.ErrNotFound
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, storage.ErrNotFound
}

func (m *MockStore) CreateUser(ctx context.Context, user *models.User) (models.InsertResult, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: "new-id"}, nil
}

func (m *MockStore) ToggleUserStatus(ctx context.Context, id string) (models.UpdateResult, error) {
	if m.ToggleUserStatusFunc != nil {
		return m.ToggleUserStatusFunc(ctx, id)
	}
	return models.UpdateResult{}, storage.ErrNotFound
}

func (m *MockStore) PromoteToHR(ctx context.Context, id string) (models.UpdateResult, error) {
	if m.PromoteToHRFunc != nil {
		return m.PromoteToHRFunc(ctx, id)
	}
	return models.UpdateResult{}, storage.ErrNotFound
}

func (m *MockStore) MarkFired(ctx context.Context, id string) (models.UpdateResult, error) {
	if m.MarkFiredFunc != nil {
		return m.MarkFiredFunc(ctx, id)
	}
	return models.UpdateResult{}, storage.ErrNotFound
}

func (m *MockStore) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return models.DeleteResult{Acknowledged: true}, nil
}

func (m *MockStore) ListWorks(ctx context.Context) ([]models.Record, error) {
	if m.ListWorksFunc != nil {
		return m.ListWorksFunc(ctx)
	}
	return []models.Record{}, nil
}

func (m *MockStore) InsertWork(ctx context.Context, body models.Document) (models.InsertResult, error) {
	if m.InsertWorkFunc != nil {
		return m.InsertWorkFunc(ctx, body)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: "work-id"}, nil
}

func (m *MockStore) ListPayments(ctx context.Context) ([]models.Record, error) {
	if m.ListPaymentsFunc != nil {
		return m.ListPaymentsFunc(ctx)
	}
	return []models.Record{}, nil
}

func (m *MockStore) InsertPayment(ctx context.Context, body models.Document) (models.InsertResult, error) {
	if m.InsertPaymentFunc != nil {
		return m.InsertPaymentFunc(ctx, body)
	}
	return models.InsertResult{Acknowledged: true, InsertedID: "payment-id"}, nil
}

// MockPayments records requested intent amounts.
type MockPayments struct {
	Amounts []int64
	Err     error
}

func (m *MockPayments) CreatePaymentIntent(_ context.Context, amount int64) (string, error) {
	m.Amounts = append(m.Amounts, amount)
	if m.Err != nil {
		return "", m.Err
	}
	return "pi_test_secret", nil
}

type publishedEvent struct {
	Subject string
	Data    map[string]any
}

// MockPublisher records published events.
type MockPublisher struct {
	mu     sync.Mutex
	Events []publishedEvent
	Err    error
}

func (m *MockPublisher) Publish(_ context.Context, subject string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, publishedEvent{Subject: subject, Data: data})
	return m.Err
}

// MockCache is an in-memory Cache.
type MockCache struct {
	Data map[string][]byte
	Sets int
}

func (m *MockCache) GetBytes(_ context.Context, key string) ([]byte, error) {
	v, ok := m.Data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (m *MockCache) SetBytes(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.Data[key] = value
	m.Sets++
	return nil
}
