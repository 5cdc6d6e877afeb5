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

// CourseStore implements store.CourseStore backed by a MongoDB collection.
type CourseStore struct {
	col *mongo.Collection
}

// Ensure CourseStore implements the interface
var _ store.CourseStore = (*CourseStore)(nil)

// NewCourseStore creates a CourseStore using the "courses" collection.
func NewCourseStore(db *mongo.Database) *CourseStore {
	return &CourseStore{col: db.Collection(coursesCollection)}
}

// List implements store.CourseStore.List.
func (s *CourseStore) List(ctx context.Context) ([]domain.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, store.NewStoreError("course", "list", "find failed", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var courses []domain.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, store.NewStoreError("course", "list", "cursor decode failed", err)
	}
	return courses, nil
}

// GetByID implements store.CourseStore.GetByID.
func (s *CourseStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Course, error) {
	var course domain.Course
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCourseNotFound
		}
		return nil, store.NewStoreError("course", "get", "find failed", err)
	}
	return &course, nil
}

// Create implements store.CourseStore.Create.
func (s *CourseStore) Create(ctx context.Context, course *domain.Course) error {
	res, err := s.col.InsertOne(ctx, course)
	if err != nil {
		return store.NewStoreError("course", "create", "insert failed", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}
	return nil
}

// Update implements store.CourseStore.Update with a partial $set.
func (s *CourseStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	update store.CourseUpdate,
) (*domain.Course, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var course domain.Course
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCourseNotFound
		}
		return nil, store.NewStoreError("course", "update", "find-and-update failed", err)
	}
	return &course, nil
}

// Delete implements store.CourseStore.Delete and returns the deleted record.
func (s *CourseStore) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Course, error) {
	var course domain.Course
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCourseNotFound
		}
		return nil, store.NewStoreError("course", "delete", "find-and-delete failed", err)
	}
	return &course, nil
}
