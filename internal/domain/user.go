package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values assigned to users. RoleAdmin is the single privileged role;
// the authorization gate matches it exactly rather than as a minimum.
const (
	RoleMember = 1
	RoleAdmin  = 99
)

// Password length bounds. The upper bound is bcrypt's practical input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// User represents a registered user of the application.
// PasswordHash is stored in the "password" field for compatibility with the
// existing collection layout and is never serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"                json:"name"`
	Email        string             `bson:"email"               json:"email"`
	PasswordHash string             `bson:"password"            json:"-"`
	Role         int                `bson:"role"                json:"role"`
	CreatedAt    time.Time          `bson:"created_at"          json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"          json:"updated_at"`
}

// NewUser creates a User with the given name, email, and already-hashed
// password. The caller is responsible for hashing; plaintext passwords never
// reach the domain layer. New users get RoleMember.
func NewUser(name, email, passwordHash string) (*User, error) {
	user := &User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Role:         RoleMember,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if u.PasswordHash == "" {
		return ErrEmptyPassword
	}
	return nil
}

// IsAdmin reports whether the user holds the privileged role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
