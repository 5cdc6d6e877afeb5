package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/classtrack/classtrack-api/internal/domain"
	"github.com/classtrack/classtrack-api/internal/store"
)

// MockCourseStore implements store.CourseStore for testing
type MockCourseStore struct {
	// Custom behavior functions
	ListFn   func(ctx context.Context) ([]domain.Course, error)
	GetFn    func(ctx context.Context, id primitive.ObjectID) (*domain.Course, error)
	CreateFn func(ctx context.Context, course *domain.Course) error
	UpdateFn func(ctx context.Context, id primitive.ObjectID, update store.CourseUpdate) (*domain.Course, error)
	DeleteFn func(ctx context.Context, id primitive.ObjectID) (*domain.Course, error)

	// Default response values
	Courses []domain.Course
	Course  *domain.Course
	Err     error

	// Call tracking for verification
	mu          sync.Mutex
	ListCalls   int
	GetCalls    int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// Ensure MockCourseStore implements the interface
var _ store.CourseStore = (*MockCourseStore)(nil)

// CallCount returns the total number of store calls made.
func (m *MockCourseStore) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListCalls + m.GetCalls + m.CreateCalls + m.UpdateCalls + m.DeleteCalls
}

// List implements the store.CourseStore interface
func (m *MockCourseStore) List(ctx context.Context) ([]domain.Course, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Courses, m.Err
}

// GetByID implements the store.CourseStore interface
func (m *MockCourseStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Course, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return m.Course, m.Err
}

// Create implements the store.CourseStore interface
func (m *MockCourseStore) Create(ctx context.Context, course *domain.Course) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, course)
	}
	return m.Err
}

// Update implements the store.CourseStore interface
func (m *MockCourseStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	update store.CourseUpdate,
) (*domain.Course, error) {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return m.Course, m.Err
}

// Delete implements the store.CourseStore interface
func (m *MockCourseStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Course, error) {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Course, m.Err
}
