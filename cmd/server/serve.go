package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ems-backend/docs"
	"ems-backend/internal/auth"
	"ems-backend/internal/cache"
	"ems-backend/internal/handlers"
	"ems-backend/internal/middleware"
	"ems-backend/internal/natsbus"
	"ems-backend/internal/services"
	"ems-backend/internal/storage"
)

const (
	dbConnectAttempts = 10
	dbConnectWait     = 2 * time.Second
	requestTimeout    = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection (with retries)
	db, err := storage.Open(ctx, cfg.DatabaseURL, dbConnectAttempts, dbConnectWait)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	log.Info("connected to database")

	store := storage.NewStorage(db)
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	deps := handlers.Deps{
		Store:     store,
		Payments:  services.NewStripeClient(cfg.StripeSecretKey, cfg.PaymentCurrency),
		Logger:    log,
		Duplicate: cfg.DuplicateUserStatus,
	}

	// Redis cache and token rate limiting
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable; caching and rate limiting disabled", zap.Error(err))
		} else {
			defer redisCache.Close()
			deps.Cache = redisCache
			deps.TokenMW = middleware.RateLimitTokenIssue(redisCache, log)
		}
	}

	// NATS events
	if cfg.NATSURL != "" {
		natsClient, err := natsbus.Connect(cfg.NATSURL, log)
		if err != nil {
			log.Warn("nats unavailable; domain events disabled", zap.Error(err))
		} else {
			defer natsClient.Close()
			deps.Events = natsClient
		}
	}

	// Tracing
	if cfg.OTLPEndpoint != "" {
		tp, err := middleware.InitTracer(ctx, cfg.OTLPEndpoint)
		if err != nil {
			log.Warn("tracing disabled", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = tp.Shutdown(shutdownCtx)
			}()
		}
	}

	issuer, err := auth.NewIssuer(cfg.TokenSecret)
	if err != nil {
		return err
	}
	deps.Issuer = issuer

	h := handlers.New(deps)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Tracing)
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)
	r.Use(chimw.Timeout(requestTimeout))
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown", zap.Error(err))
		}
	}()

	log.Info("server starting", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	log.Info("server stopped")
	return nil
}
