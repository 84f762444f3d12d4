package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	issuer, err := NewIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return issuer
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	if _, err := NewIssuer(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestGenerateThenParse(t *testing.T) {
	issuer := newTestIssuer(t)

	token, expiresAt, err := issuer.GenerateToken(map[string]any{"email": "ana@example.com", "name": "Ana"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if d := time.Until(expiresAt); d < 59*time.Minute || d > time.Hour {
		t.Errorf("expiry in %v, want ~1h", d)
	}

	id, err := issuer.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id.Email != "ana@example.com" {
		t.Errorf("Email = %q", id.Email)
	}
	if id.Claims["name"] != "Ana" {
		t.Errorf("name claim = %v", id.Claims["name"])
	}
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := newTestIssuer(t)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, _, err := issuer.GenerateToken(map[string]any{"email": "ana@example.com"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	issuer.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := issuer.ParseToken(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	issuer.now = func() time.Time { return issued.Add(TokenTTL + time.Second) }
	if _, err := issuer.ParseToken(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	other, _ := NewIssuer("other-secret")
	token, _, err := other.GenerateToken(map[string]any{"email": "ana@example.com"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := newTestIssuer(t).ParseToken(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestGenerateRejectsEmptyPayload(t *testing.T) {
	if _, _, err := newTestIssuer(t).GenerateToken(nil); err != ErrEmptyPayload {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
}

func TestRequire(t *testing.T) {
	issuer := newTestIssuer(t)
	valid, _, _ := issuer.GenerateToken(map[string]any{"email": "ana@example.com"})

	var seen *Identity
	h := issuer.Require(func(w http.ResponseWriter, r *http.Request, id *Identity) {
		seen = id
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/users/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusNoContent && (seen == nil || seen.Email != "ana@example.com") {
				t.Errorf("identity = %+v", seen)
			}
			if tt.want == http.StatusUnauthorized && seen != nil {
				t.Error("handler ran for rejected request")
			}
		})
	}
}

func TestIssueTokenHandler(t *testing.T) {
	issuer := newTestIssuer(t)
	h := NewHandler(issuer, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewBufferString(`{"email":"ana@example.com"}`))
	h.IssueToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var resp tokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id, err := issuer.ParseToken(resp.Token)
	if err != nil || id.Email != "ana@example.com" {
		t.Fatalf("issued token invalid: %v %+v", err, id)
	}

	for _, body := range []string{`not json`, `[]`, `{}`, `"ana"`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
		h.IssueToken(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d", body, rec.Code)
		}
	}
}
