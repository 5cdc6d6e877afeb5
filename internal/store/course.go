package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/classtrack/classtrack-api/internal/domain"
)

// CourseUpdate describes a partial update to a course. Nil fields are left
// unchanged by the store.
type CourseUpdate struct {
	Name *string
}

// CourseStore defines the interface for course data persistence.
type CourseStore interface {
	// List returns all courses.
	List(ctx context.Context) ([]domain.Course, error)

	// GetByID retrieves a course by its unique ID.
	// Returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Course, error)

	// Create saves a new course to the store and fills in its ID.
	Create(ctx context.Context, course *domain.Course) error

	// Update applies a partial update to an existing course and returns the
	// updated record. Returns ErrCourseNotFound if the course does not exist.
	Update(ctx context.Context, id primitive.ObjectID, update CourseUpdate) (*domain.Course, error)

	// Delete removes a course by its ID and returns the deleted record.
	// Returns ErrCourseNotFound if the course does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Course, error)
}
