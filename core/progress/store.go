package progress

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

var ErrNotFound = errors.New("progress record not found")

func Create(ctx context.Context, db *mongo.Database, prog Progress) error {
	if _, err := db.Collection(database.ProgressCollection).InsertOne(ctx, prog); err != nil {
		return fmt.Errorf("inserting progress record: %w", err)
	}
	return nil
}

func FetchByCourseUser(ctx context.Context, db *mongo.Database, courseID string, userID string) (Progress, error) {
	filter := bson.M{"course_id": courseID, "user_id": userID}

	var prog Progress
	err := db.Collection(database.ProgressCollection).FindOne(ctx, filter).Decode(&prog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Progress{}, ErrNotFound
		}
		return Progress{}, fmt.Errorf("fetching progress for course[%s] user[%s]: %w", courseID, userID, err)
	}
	return prog, nil
}

// CompleteVideo marks a video as done. $addToSet keeps the completed list
// duplicate-free even when the same video is reported twice.
func CompleteVideo(ctx context.Context, db *mongo.Database, courseID string, userID string, videoID string) (Progress, error) {
	filter := bson.M{"course_id": courseID, "user_id": userID}
	update := bson.M{
		"$addToSet": bson.M{"completed_videos": videoID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var prog Progress
	err := db.Collection(database.ProgressCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&prog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Progress{}, ErrNotFound
		}
		return Progress{}, fmt.Errorf("completing video[%s] for course[%s] user[%s]: %w", videoID, courseID, userID, err)
	}
	return prog, nil
}
