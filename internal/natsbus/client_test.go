package natsbus

import (
	"context"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ems-backend/internal/models"
)

func TestEncodeEvent(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	payload, id, err := encodeEvent(SubjectUserCreated, map[string]any{"id": "u1", "email": "ana@example.com"}, now)
	if err != nil {
		t.Fatalf("encodeEvent: %v", err)
	}

	var event models.Event
	if err := msgpack.Unmarshal(payload, &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.ID != id || event.ID == "" {
		t.Errorf("ID = %q, returned %q", event.ID, id)
	}
	if event.V != models.EventVersion || event.Type != SubjectUserCreated || event.TS != now.UnixMilli() {
		t.Errorf("event = %+v", event)
	}
	if event.Data["email"] != "ana@example.com" {
		t.Errorf("data = %v", event.Data)
	}
}

func TestNoopPublish(t *testing.T) {
	var p Publisher = Noop{}
	if err := p.Publish(context.Background(), SubjectWorkCreated, nil); err != nil {
		t.Fatalf("Noop.Publish: %v", err)
	}
}
