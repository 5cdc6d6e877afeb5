package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/classtrack/classtrack-api/internal/domain"
	"github.com/classtrack/classtrack-api/internal/store"
)

// UserStore implements store.UserStore backed by a MongoDB collection.
type UserStore struct {
	col *mongo.Collection
}

// Ensure UserStore implements the interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore using the "users" collection.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(usersCollection)}
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, store.NewStoreError("user", "list", "find failed", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, store.NewStoreError("user", "list", "cursor decode failed", err)
	}
	return users, nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "find failed", err)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "find failed", err)
	}
	return &user, nil
}

// Create implements store.UserStore.Create. The unique email index reports
// duplicates as ErrEmailExists.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrEmailExists
		}
		return store.NewStoreError("user", "create", "insert failed", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// Update implements store.UserStore.Update with a partial $set.
func (s *UserStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	update store.UserUpdate,
) (*domain.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrEmailExists
		}
		return nil, store.NewStoreError("user", "update", "find-and-update failed", err)
	}
	return &user, nil
}

// Delete implements store.UserStore.Delete and returns the deleted record.
func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "delete", "find-and-delete failed", err)
	}
	return &user, nil
}
