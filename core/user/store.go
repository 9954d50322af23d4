package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/irsalhamdi/course-market/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

func Create(ctx context.Context, db *mongo.Database, usr User) error {
	if _, err := db.Collection(database.UsersCollection).InsertOne(ctx, usr); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func Fetch(ctx context.Context, db *mongo.Database, id string) (User, error) {
	var usr User
	err := db.Collection(database.UsersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&usr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("fetching user[%s]: %w", id, err)
	}
	return usr, nil
}

func FetchByEmail(ctx context.Context, db *mongo.Database, email string) (User, error) {
	var usr User
	err := db.Collection(database.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&usr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("fetching user by email: %w", err)
	}
	return usr, nil
}

// PushEnrollment appends a course id and the matching progress record id to
// the user document in a single update, returning the updated user.
func PushEnrollment(ctx context.Context, db *mongo.Database, userID string, courseID string, progressID string) (User, error) {
	update := bson.M{
		"$push": bson.M{"courses": courseID, "course_progress": progressID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var usr User
	err := db.Collection(database.UsersCollection).FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&usr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("recording enrollment on user[%s]: %w", userID, err)
	}
	return usr, nil
}
