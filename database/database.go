package database

import (
	"context"
	"fmt"

	"github.com/irsalhamdi/course-market/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. All packages address collections through these so that a
// rename stays a one-line change.
const (
	UsersCollection    = "users"
	CoursesCollection  = "courses"
	ProgressCollection = "course_progress"
)

// Open connects to the document store, verifies the connection and makes sure
// the indexes the application relies on exist.
func Open(cfg config.DB) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.URI, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("pinging %s: %w", cfg.URI, err)
	}

	db := client.Database(cfg.Name)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensuring indexes: %w", err)
	}

	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	users := []mongo.IndexModel{{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}}
	if _, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}

	progress := []mongo.IndexModel{{
		Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "user_id", Value: 1}},
	}}
	if _, err := db.Collection(ProgressCollection).Indexes().CreateMany(ctx, progress); err != nil {
		return fmt.Errorf("creating progress indexes: %w", err)
	}

	return nil
}
