package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course represents a single course offered through the platform.
// The store owns the authoritative copy; the API layer never caches it.
type Course struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name"                json:"name"`
	CreatedAt time.Time          `bson:"created_at"          json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"          json:"updated_at"`
}

// NewCourse creates a Course with the given name and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewCourse(name string) (*Course, error) {
	course := &Course{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks if the Course has valid data.
func (c *Course) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}
