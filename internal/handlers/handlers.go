package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"ems-backend/internal/auth"
	"ems-backend/internal/models"
	"ems-backend/internal/natsbus"
	"ems-backend/internal/respond"
	"ems-backend/internal/storage"
)

const maxBodyBytes = 1 << 20

// Store is the persistence surface used by the HTTP handlers.
type Store interface {
	Ping(ctx context.Context) error

	ListServices(ctx context.Context) ([]models.Record, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (models.InsertResult, error)
	ToggleUserStatus(ctx context.Context, id string) (models.UpdateResult, error)
	PromoteToHR(ctx context.Context, id string) (models.UpdateResult, error)
	MarkFired(ctx context.Context, id string) (models.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)

	ListWorks(ctx context.Context) ([]models.Record, error)
	InsertWork(ctx context.Context, body models.Document) (models.InsertResult, error)

	ListPayments(ctx context.Context) ([]models.Record, error)
	InsertPayment(ctx context.Context, body models.Document) (models.InsertResult, error)
}

// Cache holds serialized read-mostly responses.
type Cache interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PaymentIntents creates processor-side payment intents.
type PaymentIntents interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

type Deps struct {
	Store     Store
	Cache     Cache
	Payments  PaymentIntents
	Events    natsbus.Publisher
	Issuer    *auth.Issuer
	TokenMW   func(http.Handler) http.Handler
	Logger    *zap.Logger
	Duplicate int
}

type Handler struct {
	store           Store
	cache           Cache
	payments        PaymentIntents
	events          natsbus.Publisher
	issuer          *auth.Issuer
	tokens          *auth.Handler
	tokenMW         func(http.Handler) http.Handler
	log             *zap.Logger
	duplicateStatus int
}

func New(d Deps) *Handler {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	events := d.Events
	if events == nil {
		events = natsbus.Noop{}
	}
	duplicate := d.Duplicate
	if duplicate == 0 {
		duplicate = http.StatusConflict
	}
	return &Handler{
		store:           d.Store,
		cache:           d.Cache,
		payments:        d.Payments,
		events:          events,
		issuer:          d.Issuer,
		tokens:          auth.NewHandler(d.Issuer, log),
		tokenMW:         d.TokenMW,
		log:             log,
		duplicateStatus: duplicate,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/healthz", h.Health)

	// Tokens
	if h.tokenMW != nil {
		r.With(h.tokenMW).Post("/jwt", h.tokens.IssueToken)
	} else {
		r.Post("/jwt", h.tokens.IssueToken)
	}

	// Catalog
	r.Get("/services", h.ListServices)

	// Users
	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.issuer.Require(h.GetUser))
	r.Delete("/users/{id}", h.issuer.Require(h.DeleteUser))
	r.Get("/users/admin/{email}", h.issuer.Require(h.CheckRole(models.DesignationAdmin)))
	r.Get("/users/hr/{email}", h.issuer.Require(h.CheckRole(models.DesignationHR)))
	r.Get("/users/employee/{email}", h.issuer.Require(h.CheckRole(models.DesignationEmployee)))
	r.Patch("/users/hr/{id}", h.ToggleStatus)
	r.Patch("/users/admin/{id}", h.PromoteToHR)
	r.Patch("/users/fired/{id}", h.MarkFired)

	// Works
	r.Get("/works", h.ListWorks)
	r.Post("/works", h.InsertWork)

	// Payments
	r.Post("/create-payment-intent", h.CreatePaymentIntent)
	r.Get("/payments", h.ListPayments)
	r.Post("/payments", h.InsertPayment)

	// API docs
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (h *Handler) readDocument(w http.ResponseWriter, r *http.Request) (models.Document, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	doc, err := models.DecodeDocument(data)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return doc, true
}

// storeError maps storage failures to responses; unexpected errors are logged.
func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, storage.ErrInvalidID):
		respond.Error(w, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, notFound)
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
	default:
		h.log.Error("store operation failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) publish(ctx context.Context, subject string, data map[string]any) {
	if err := h.events.Publish(ctx, subject, data); err != nil {
		h.log.Warn("publish event", zap.String("subject", subject), zap.Error(err))
	}
}
