package config

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingSecret = errors.New("ACCESS_TOKEN_SECRET is required")

type Config struct {
	Port string

	DatabaseURL string

	TokenSecret string

	StripeSecretKey string
	PaymentCurrency string

	RedisURL string
	RedisDB  int

	NATSURL string

	OTLPEndpoint string

	CORSAllowedOrigins []string

	LogLevel string
	LogFile  string

	DuplicateUserStatus int
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "5000"),
		DatabaseURL:         getEnv("DATABASE_URL", buildDSN()),
		TokenSecret:         os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		PaymentCurrency:     strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
		RedisURL:            os.Getenv("REDIS_URL"),
		RedisDB:             getEnvInt("REDIS_DB", -1),
		NATSURL:             os.Getenv("NATS_URL"),
		OTLPEndpoint:        os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFile:             os.Getenv("LOG_FILE"),
		DuplicateUserStatus: getEnvInt("DUPLICATE_USER_STATUS", http.StatusConflict),
	}

	if cfg.TokenSecret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.DuplicateUserStatus != http.StatusOK && cfg.DuplicateUserStatus != http.StatusConflict {
		cfg.DuplicateUserStatus = http.StatusConflict
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func buildDSN() string {
	return "host=" + getEnv("DB_HOST", "localhost") +
		" port=" + getEnv("DB_PORT", "5432") +
		" user=" + getEnv("DB_USER", "ems_user") +
		" password=" + getEnv("DB_PASSWORD", "ems_pass") +
		" dbname=" + getEnv("DB_NAME", "emdb") +
		" sslmode=" + getEnv("DB_SSLMODE", "disable")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
