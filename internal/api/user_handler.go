package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/classtrack/classtrack-api/internal/api/shared"
	"github.com/classtrack/classtrack-api/internal/domain"
	"github.com/classtrack/classtrack-api/internal/service/auth"
	"github.com/classtrack/classtrack-api/internal/store"
)

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, hasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		hasher:    hasher,
		validator: newValidator(),
	}
}

// List handles GET /api/users. Password hashes never serialize.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("User with id %s is not found!", chi.URLParam(r, "id")))
			return
		}
		slog.Error("failed to get user", "error", err, "user_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to get user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest

	// Parse request
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, firstValidationMessage(err))
		return
	}

	// Hash the password before it reaches the domain layer
	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, passwordHash)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Store user; the unique email index surfaces duplicates as a conflict
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				fmt.Sprintf("User with email %s is already exist!", req.Email))
			return
		}
		slog.Error("failed to create user", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Update handles PUT /api/users/{id}. Requires authentication.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, firstValidationMessage(err))
		return
	}

	user, err := h.userStore.Update(r.Context(), id, store.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("User with id %s is not found!", chi.URLParam(r, "id")))
		case errors.Is(err, store.ErrEmailExists):
			email := ""
			if req.Email != nil {
				email = *req.Email
			}
			shared.RespondWithError(w, r, http.StatusBadRequest,
				fmt.Sprintf("User with email %s is already exist!", email))
		default:
			slog.Error("failed to update user", "error", err, "user_id", id.Hex())
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Delete handles DELETE /api/users/{id}. Requires authentication and the
// privileged role; both are enforced by the route's middleware chain before
// this handler runs.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("User with id %s is not found!", chi.URLParam(r, "id")))
			return
		}
		slog.Error("failed to delete user", "error", err, "user_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
