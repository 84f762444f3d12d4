package auth

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"ems-backend/internal/models"
	"ems-backend/internal/respond"
)

type Handler struct {
	issuer *Issuer
	log    *zap.Logger
}

func NewHandler(issuer *Issuer, log *zap.Logger) *Handler {
	return &Handler{issuer: issuer, log: log}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs the submitted identity into a one-hour access token
// @Summary Issue access token
// @Description Signs the submitted identity payload (e.g. {"email": "..."}) into a bearer token valid for one hour
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body object true "Identity payload"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} respond.Message "Invalid request body"
// @Failure 429 {object} respond.Message "Rate limit exceeded"
// @Router /jwt [post]
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payload, err := models.DecodeDocument(data)
	if err != nil || len(payload) == 0 {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, _, err := h.issuer.GenerateToken(payload)
	if err != nil {
		h.log.Error("sign token", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respond.JSON(w, http.StatusOK, tokenResponse{Token: token})
}
