package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of every issued access token.
const TokenTTL = time.Hour

var (
	errMissingSecret = errors.New("token secret is not set")
	ErrEmptyPayload  = errors.New("token payload is empty")
)

// Identity is the decoded payload of a verified token.
type Identity struct {
	Email  string
	Claims jwt.MapClaims
}

// Issuer signs and verifies HS256 access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, errMissingSecret
	}
	return &Issuer{secret: []byte(secret), ttl: TokenTTL, now: time.Now}, nil
}

// GenerateToken embeds payload as private claims and stamps iat/exp.
func (i *Issuer) GenerateToken(payload map[string]any) (string, time.Time, error) {
	if len(payload) == 0 {
		return "", time.Time{}, ErrEmptyPayload
	}

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	delete(claims, "nbf")

	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(expiresAt)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (i *Issuer) ParseToken(tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	email, _ := claims["email"].(string)
	return &Identity{Email: email, Claims: claims}, nil
}
