package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"ems-backend/internal/models"
)

// newTestStorage connects to TEST_DATABASE_URL and resets the tables.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := NewStorage(db)
	ctx := context.Background()
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.ExecContext(ctx, `TRUNCATE users, works, payments, services`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return s
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first := &models.User{Email: "dup@example.com", Attributes: models.Document{"name": "First"}}
	if _, err := s.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	second := &models.User{Email: "dup@example.com"}
	if _, err := s.CreateUser(ctx, second); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("len(users) = %d, want 1", len(users))
	}
	if users[0].Attributes["name"] != "First" || users[0].Designation != models.DesignationEmployee {
		t.Errorf("stored user = %+v", users[0])
	}
}

func TestUserPatches(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u := &models.User{Email: "pat@example.com"}
	if _, err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	res, err := s.ToggleUserStatus(ctx, u.ID)
	if err != nil || res.ModifiedCount != 1 {
		t.Fatalf("ToggleUserStatus = %+v, %v", res, err)
	}
	got, _ := s.GetUser(ctx, u.ID)
	if !got.Status {
		t.Error("status should be true after one toggle")
	}

	if res, _ := s.PromoteToHR(ctx, u.ID); res.ModifiedCount != 1 {
		t.Errorf("first promote modified = %d", res.ModifiedCount)
	}
	if res, _ := s.PromoteToHR(ctx, u.ID); res.MatchedCount != 1 || res.ModifiedCount != 0 {
		t.Errorf("second promote = %+v", res)
	}

	if _, err := s.MarkFired(ctx, u.ID); err != nil {
		t.Fatalf("MarkFired: %v", err)
	}
	got, _ = s.GetUser(ctx, u.ID)
	if !got.Fired || got.Designation != models.DesignationHR {
		t.Errorf("after patches = %+v", got)
	}

	if _, err := s.MarkFired(ctx, "6b0c5c1e-3b8e-4d57-a5de-5c1d1f0b1d6a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("MarkFired unknown id: %v", err)
	}
	if _, err := s.MarkFired(ctx, "not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("MarkFired bad id: %v", err)
	}

	del, err := s.DeleteUser(ctx, u.ID)
	if err != nil || del.DeletedCount != 1 {
		t.Fatalf("DeleteUser = %+v, %v", del, err)
	}
	if _, err := s.GetUser(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser after delete: %v", err)
	}
	if del, err := s.DeleteUser(ctx, u.ID); err != nil || del.DeletedCount != 0 {
		t.Errorf("second DeleteUser = %+v, %v", del, err)
	}
}

func TestListWorksNewestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, task := range []string{"oldest", "newest", "middle"} {
		offset := map[int]time.Duration{0: 0, 1: 2 * time.Hour, 2: time.Hour}[i]
		body := models.Document{
			"task":      task,
			"createdAt": base.Add(offset).Format(time.RFC3339),
		}
		if _, err := s.InsertWork(ctx, body); err != nil {
			t.Fatalf("InsertWork: %v", err)
		}
	}

	works, err := s.ListWorks(ctx)
	if err != nil {
		t.Fatalf("ListWorks: %v", err)
	}
	want := []string{"newest", "middle", "oldest"}
	if len(works) != len(want) {
		t.Fatalf("len(works) = %d", len(works))
	}
	for i, w := range works {
		if w.Body["task"] != want[i] {
			t.Errorf("works[%d] = %v, want %s", i, w.Body["task"], want[i])
		}
	}
}

func TestPaymentsRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	res, err := s.InsertPayment(ctx, models.Document{"email": "pay@example.com", "salary": 1200.5})
	if err != nil || !res.Acknowledged || res.InsertedID == "" {
		t.Fatalf("InsertPayment = %+v, %v", res, err)
	}

	payments, err := s.ListPayments(ctx)
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(payments) != 1 || payments[0].ID != res.InsertedID || payments[0].Body["salary"] != 1200.5 {
		t.Errorf("payments = %+v", payments)
	}
}

func TestSeedServicesListed(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	docs, err := models.DecodeDocuments([]byte(`[{"title":"Payroll"},{"title":"Onboarding"}]`))
	if err != nil {
		t.Fatalf("DecodeDocuments: %v", err)
	}
	if n, err := s.SeedServices(ctx, docs); err != nil || n != 2 {
		t.Fatalf("SeedServices = %d, %v", n, err)
	}

	services, err := s.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 2 || services[0].Body["title"] != "Payroll" {
		t.Errorf("services = %+v", services)
	}
}
