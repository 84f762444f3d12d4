package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Document is a free-form JSON object persisted as JSONB.
type Document map[string]any

func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (d *Document) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*d = Document{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("document: unsupported scan type %T", src)
	}

	doc := Document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*d = doc
	return nil
}

// Clone returns a shallow copy without the given keys.
func (d Document) Clone(without ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range without {
		delete(out, k)
	}
	return out
}

var ErrNotAnObject = errors.New("body must be a JSON object")

// DecodeDocument parses a JSON object. Arrays, scalars and null are rejected.
func DecodeDocument(data []byte) (Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return Document(obj), nil
}

// DecodeDocuments parses a JSON array of objects.
func DecodeDocuments(data []byte) ([]Document, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(raw))
	for i, item := range raw {
		doc, err := DecodeDocument(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// CreatedAtKey is the body field clients use to timestamp records.
const CreatedAtKey = "createdAt"

// maxEpochMillis is the last millisecond of year 9999.
var maxEpochMillis = float64(time.Date(9999, 12, 31, 23, 59, 59, 999e6, time.UTC).UnixMilli())

// TimestampOf returns the body's createdAt when it is an RFC 3339 string or a
// millisecond epoch number within year 9999.
func TimestampOf(d Document) (time.Time, bool) {
	switch v := d[CreatedAtKey].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t.UTC(), true
		}
	case float64:
		if v > 0 && v <= maxEpochMillis {
			return time.UnixMilli(int64(v)).UTC(), true
		}
	}
	return time.Time{}, false
}
