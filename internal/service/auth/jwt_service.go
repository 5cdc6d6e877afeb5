package auth

import (
	"context"
	"time"

	"github.com/classtrack/classtrack-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's identity and
	// role. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. The returned error distinguishes expiry (ErrExpiredToken),
	// structural problems (ErrMalformedToken), and signature or other
	// validation failures (ErrInvalidToken).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded payload of an issued token, asserting an
// authenticated identity and role. Reconstructed on each request from the
// verified token; never persisted.
type Claims struct {
	// Name is the display name of the user the token was issued for.
	Name string `json:"name,omitempty"`

	// Email is the unique email address of the user.
	Email string `json:"email,omitempty"`

	// Role is the user's role value, matched exactly by the authorization gate.
	Role int `json:"role,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
