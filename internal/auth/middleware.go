package auth

import (
	"net/http"
	"strings"

	"ems-backend/internal/respond"
)

// AuthedHandlerFunc receives the verified caller identity explicitly.
type AuthedHandlerFunc func(w http.ResponseWriter, r *http.Request, id *Identity)

// Require rejects requests without a valid bearer token and passes the
// decoded identity to next.
func (i *Issuer) Require(next AuthedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		identity, err := i.ParseToken(token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next(w, r, identity)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}
