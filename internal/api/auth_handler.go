package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/classtrack/classtrack-api/internal/api/shared"
	"github.com/classtrack/classtrack-api/internal/service/auth"
	"github.com/classtrack/classtrack-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	loginLimiter     *auth.LoginLimiter
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// loginLimiter may be nil, which disables login throttling.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	loginLimiter *auth.LoginLimiter,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		loginLimiter:     loginLimiter,
		validator:        newValidator(),
	}
}

// Login handles POST /api/login. Email existence is checked first, then the
// password; each failure keeps its own message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

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

	email := strings.ToLower(req.Email)

	// Throttle repeated attempts per email. Limiter outages fail open: a
	// broken Redis must not lock everyone out.
	if err := h.loginLimiter.Allow(r.Context(), email); err != nil {
		if errors.Is(err, auth.ErrLoginRateLimited) {
			shared.RespondWithError(w, r, http.StatusTooManyRequests,
				"Too many login attempts, try again later")
			return
		}
		slog.Warn("login limiter unavailable", "error", err)
	}

	// Get user by email
	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid email")
			return
		}
		slog.Error("failed to get user by email", "error", err, "email", email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	// Verify password
	if err := h.passwordVerifier.Compare(user.PasswordHash, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid password")
		return
	}

	if err := h.loginLimiter.Reset(r.Context(), email); err != nil {
		slog.Warn("failed to reset login limiter", "error", err)
	}

	// Generate token
	token, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
