// Package mongodb provides the MongoDB implementations of the store
// interfaces along with connection and index bootstrap helpers.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/classtrack/classtrack-api/internal/config"
)

// Collection names used by the store implementations.
const (
	coursesCollection = "courses"
	usersCollection   = "users"
)

// Connect establishes a connection to MongoDB, verifies it with a ping, and
// returns the database handle plus a disconnect function for shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Database, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(cfg.Name), client.Disconnect, nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on users.email is what turns duplicate registrations into a
// conflict instead of a second record.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create unique email index: %w", err)
	}
	return nil
}
