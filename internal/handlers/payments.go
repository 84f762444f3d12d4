package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ems-backend/internal/natsbus"
	"ems-backend/internal/respond"
	"ems-backend/internal/services"
)

// Salary accepts a JSON number or a numeric string.
type Salary float64

func (s *Salary) UnmarshalJSON(data []byte) error {
	str := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(str); err == nil {
		str = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return errors.New("salary must be numeric")
	}
	*s = Salary(v)
	return nil
}

type paymentIntentRequest struct {
	Salary *Salary `json:"salary"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent opens a card payment intent for a salary amount
// @Summary Create payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body paymentIntentRequest true "Salary in major currency units"
// @Success 200 {object} paymentIntentResponse
// @Failure 400 {object} respond.Message
// @Failure 502 {object} respond.Message
// @Router /create-payment-intent [post]
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil || req.Salary == nil {
		respond.Error(w, http.StatusBadRequest, "Invalid salary")
		return
	}

	amount, err := services.ToMinorUnits(float64(*req.Salary))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid salary")
		return
	}

	secret, err := h.payments.CreatePaymentIntent(r.Context(), amount)
	if err != nil {
		if errors.Is(err, services.ErrStripeNotEnabled) {
			respond.Error(w, http.StatusServiceUnavailable, "Payments are not configured")
			return
		}
		h.log.Error("payment intent failed", zap.Int64("amount", amount), zap.Error(err))
		respond.Error(w, http.StatusBadGateway, "Payment processor error")
		return
	}

	respond.JSON(w, http.StatusOK, paymentIntentResponse{ClientSecret: secret})
}

// ListPayments returns every recorded payment
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {array} object
// @Router /payments [get]
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.store.ListPayments(r.Context())
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}
	respond.JSON(w, http.StatusOK, payments)
}

// InsertPayment records a completed payment as submitted
// @Summary Record payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body object true "Payment document"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} respond.Message
// @Router /payments [post]
func (h *Handler) InsertPayment(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readDocument(w, r)
	if !ok {
		return
	}

	res, err := h.store.InsertPayment(r.Context(), body)
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}

	event := map[string]any{"id": res.InsertedID}
	if email, ok := body["email"].(string); ok {
		event["email"] = email
	}
	h.publish(r.Context(), natsbus.SubjectPaymentRecorded, event)
	respond.JSON(w, http.StatusOK, res)
}
