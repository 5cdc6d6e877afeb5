package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/classtrack-api/internal/api/shared"
	"github.com/classtrack/classtrack-api/internal/mocks"
	"github.com/classtrack/classtrack-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	validClaims := &auth.Claims{
		Name:  "Alice Example",
		Email: "alice@example.com",
		Role:  1,
	}

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         validClaims,
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed token",
			authHeader:     "Bearer not.a.token",
			validateErr:    auth.ErrMalformedToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			mw := NewAuthMiddleware(jwtService)

			// Terminal handler captures the claims the middleware attached
			nextCalled := false
			var capturedClaims *auth.Claims
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedClaims, _ = GetClaims(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			mw.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.Equal(t, tt.claims, capturedClaims)
			}
		})
	}
}

func TestGetClaims(t *testing.T) {
	t.Parallel()

	t.Run("context with claims", func(t *testing.T) {
		t.Parallel()
		want := &auth.Claims{Email: "alice@example.com", Role: 99}

		req, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)
		ctx := context.WithValue(req.Context(), shared.ClaimsContextKey, want)
		req = req.WithContext(ctx)

		claims, ok := GetClaims(req)

		assert.True(t, ok)
		assert.Equal(t, want, claims)
	})

	t.Run("context without claims", func(t *testing.T) {
		t.Parallel()
		req, err := http.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, err)

		claims, ok := GetClaims(req)

		assert.False(t, ok)
		assert.Nil(t, claims)
	})
}
