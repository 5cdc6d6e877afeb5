package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/classtrack/classtrack-api/internal/domain"
	"github.com/classtrack/classtrack-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Custom behavior functions
	ListFn       func(ctx context.Context) ([]domain.User, error)
	GetByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	CreateFn     func(ctx context.Context, user *domain.User) error
	UpdateFn     func(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) (*domain.User, error)
	DeleteFn     func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// Default response values
	Users []domain.User
	User  *domain.User
	Err   error

	// Call tracking for verification
	mu          sync.Mutex
	ListCalls   int
	GetCalls    int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// Ensure MockUserStore implements the interface
var _ store.UserStore = (*MockUserStore)(nil)

// CallCount returns the total number of store calls made.
func (m *MockUserStore) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListCalls + m.GetCalls + m.CreateCalls + m.UpdateCalls + m.DeleteCalls
}

// List implements the store.UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Users, m.Err
}

// GetByID implements the store.UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()

	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// Update implements the store.UserStore interface
func (m *MockUserStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	update store.UserUpdate,
) (*domain.User, error) {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return m.User, m.Err
}

// Delete implements the store.UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.User, m.Err
}
