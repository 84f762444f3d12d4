package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ems-backend/internal/cache"
	"ems-backend/internal/respond"
)

const servicesCacheTTL = 5 * time.Minute

// ListServices returns the service catalog
// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} object
// @Router /services [get]
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.cache != nil {
		if data, err := h.cache.GetBytes(ctx, cache.ServicesKey); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(data)
			return
		}
	}

	services, err := h.store.ListServices(ctx)
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}

	data, err := json.Marshal(services)
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}
	if h.cache != nil {
		if err := h.cache.SetBytes(ctx, cache.ServicesKey, data, servicesCacheTTL); err != nil {
			h.log.Warn("cache services", zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Employee Management App Running...!"))
}

// Health reports database reachability
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
