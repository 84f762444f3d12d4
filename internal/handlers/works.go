package handlers

import (
	"net/http"

	"ems-backend/internal/natsbus"
	"ems-backend/internal/respond"
)

// ListWorks returns work entries, newest first
// @Summary List work entries
// @Tags works
// @Produce json
// @Success 200 {array} object
// @Router /works [get]
func (h *Handler) ListWorks(w http.ResponseWriter, r *http.Request) {
	works, err := h.store.ListWorks(r.Context())
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}
	respond.JSON(w, http.StatusOK, works)
}

// InsertWork stores a work entry as submitted
// @Summary Record work entry
// @Tags works
// @Accept json
// @Produce json
// @Param work body object true "Work document"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} respond.Message
// @Router /works [post]
func (h *Handler) InsertWork(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readDocument(w, r)
	if !ok {
		return
	}

	res, err := h.store.InsertWork(r.Context(), body)
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}

	h.publish(r.Context(), natsbus.SubjectWorkCreated, map[string]any{"id": res.InsertedID})
	respond.JSON(w, http.StatusOK, res)
}
