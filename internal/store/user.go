package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/classtrack/classtrack-api/internal/domain"
)

// UserUpdate describes a partial update to a user. Nil fields are left
// unchanged by the store.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List returns all users. Returned records carry the password hash;
	// serialization is responsible for keeping it out of responses.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create saves a new user to the store and fills in its ID.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Update applies a partial update to an existing user and returns the
	// updated record. Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists if updating to an email that is already taken.
	Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*domain.User, error)

	// Delete removes a user by their ID and returns the deleted record.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}
