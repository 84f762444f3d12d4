package models

import (
	"encoding/json"
	"time"
)

// Record is a stored free-form document: a work entry, a payment, or a
// service catalog entry.
type Record struct {
	ID        string    `db:"id"`
	Body      Document  `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

// NewRecord stamps a body with its creation time, preferring the client's
// own createdAt field.
func NewRecord(body Document, now time.Time) Record {
	createdAt, ok := TimestampOf(body)
	if !ok {
		createdAt = now.UTC()
	}
	return Record{Body: body.Clone("_id"), CreatedAt: createdAt}
}

func (r Record) MarshalJSON() ([]byte, error) {
	out := r.Body.Clone("_id")
	out["_id"] = r.ID
	if _, ok := out[CreatedAtKey]; !ok && !r.CreatedAt.IsZero() {
		out[CreatedAtKey] = r.CreatedAt.Format(time.RFC3339Nano)
	}
	return json.Marshal(out)
}

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
