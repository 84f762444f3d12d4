package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ems-backend/internal/auth"
	"ems-backend/internal/models"
	"ems-backend/internal/natsbus"
	"ems-backend/internal/respond"
	"ems-backend/internal/storage"
)

const msgUserExists = "user already exists"

// ListUsers returns every user
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} respond.Message
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}
	respond.JSON(w, http.StatusOK, users)
}

// GetUser returns one user by id
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} object
// @Failure 400 {object} respond.Message
// @Failure 401 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, _ *auth.Identity) {
	user, err := h.store.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.storeError(w, r, err, "User not found")
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

// CheckRole answers whether the caller holds designation. Callers may only
// ask about themselves.
// @Summary Check own role
// @Tags users
// @Produce json
// @Param email path string true "Caller email"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} respond.Message
// @Failure 403 {object} respond.Message
// @Security BearerAuth
// @Router /users/admin/{email} [get]
// @Router /users/hr/{email} [get]
// @Router /users/employee/{email} [get]
func (h *Handler) CheckRole(designation models.Designation) auth.AuthedHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, id *auth.Identity) {
		email, err := url.PathUnescape(chi.URLParam(r, "email"))
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid email")
			return
		}
		if email == "" || email != id.Email {
			respond.Error(w, http.StatusForbidden, "Forbidden")
			return
		}

		holds := false
		user, err := h.store.GetUserByEmail(r.Context(), email)
		switch {
		case err == nil:
			holds = user.HasDesignation(designation)
		case errors.Is(err, storage.ErrNotFound):
		default:
			h.storeError(w, r, err, "")
			return
		}

		respond.JSON(w, http.StatusOK, map[string]bool{string(designation): holds})
	}
}

// CreateUser registers a user unless the email is already taken
// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param user body object true "User document; email required"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} respond.Message
// @Failure 409 {object} respond.Message "User already exists"
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&user); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if user.Email == "" {
		respond.Error(w, http.StatusBadRequest, "Email is required")
		return
	}
	if user.Designation != "" && !user.Designation.Valid() {
		respond.Error(w, http.StatusBadRequest, models.ErrInvalidDesignation.Error())
		return
	}
	user.ID = ""

	ctx := r.Context()
	_, err := h.store.GetUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		respond.Error(w, h.duplicateStatus, msgUserExists)
		return
	case !errors.Is(err, storage.ErrNotFound):
		h.storeError(w, r, err, "")
		return
	}

	res, err := h.store.CreateUser(ctx, &user)
	if errors.Is(err, storage.ErrEmailTaken) {
		respond.Error(w, h.duplicateStatus, msgUserExists)
		return
	}
	if err != nil {
		h.storeError(w, r, err, "")
		return
	}

	h.publish(ctx, natsbus.SubjectUserCreated, map[string]any{
		"id":          res.InsertedID,
		"email":       user.Email,
		"designation": string(user.Designation),
	})
	respond.JSON(w, http.StatusOK, res)
}

// ToggleStatus flips a user's HR-verified status
// @Summary Toggle user status
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Router /users/hr/{id} [patch]
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	h.patchUser(w, r, "status", h.store.ToggleUserStatus)
}

// PromoteToHR sets a user's designation to hr
// @Summary Promote user to HR
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Router /users/admin/{id} [patch]
func (h *Handler) PromoteToHR(w http.ResponseWriter, r *http.Request) {
	h.patchUser(w, r, "designation", h.store.PromoteToHR)
}

// MarkFired flags a user as fired
// @Summary Fire user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} respond.Message
// @Failure 404 {object} respond.Message
// @Router /users/fired/{id} [patch]
func (h *Handler) MarkFired(w http.ResponseWriter, r *http.Request) {
	h.patchUser(w, r, "fired", h.store.MarkFired)
}

func (h *Handler) patchUser(w http.ResponseWriter, r *http.Request, field string,
	apply func(ctx context.Context, id string) (models.UpdateResult, error)) {
	id := chi.URLParam(r, "id")
	res, err := apply(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err, "User not found")
		return
	}

	if res.ModifiedCount > 0 {
		h.publish(r.Context(), natsbus.SubjectUserUpdated, map[string]any{"id": id, "field": field})
	}
	respond.JSON(w, http.StatusOK, res)
}

// DeleteUser removes a user by id
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} respond.Message
// @Failure 401 {object} respond.Message
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, caller *auth.Identity) {
	id := chi.URLParam(r, "id")
	res, err := h.store.DeleteUser(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err, "User not found")
		return
	}

	if res.DeletedCount > 0 {
		h.log.Info("user deleted", zap.String("id", id), zap.String("by", caller.Email))
		h.publish(r.Context(), natsbus.SubjectUserDeleted, map[string]any{"id": id})
	}
	respond.JSON(w, http.StatusOK, res)
}
