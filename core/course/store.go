package course

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

var ErrNotFound = errors.New("course not found")

func Create(ctx context.Context, db *mongo.Database, crs Course) error {
	if _, err := db.Collection(database.CoursesCollection).InsertOne(ctx, crs); err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func Fetch(ctx context.Context, db *mongo.Database, id string) (Course, error) {
	var crs Course
	err := db.Collection(database.CoursesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&crs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Course{}, ErrNotFound
		}
		return Course{}, fmt.Errorf("fetching course[%s]: %w", id, err)
	}
	return crs, nil
}

func List(ctx context.Context, db *mongo.Database) ([]Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := db.Collection(database.CoursesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	courses := []Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decoding courses: %w", err)
	}
	return courses, nil
}

func Update(ctx context.Context, db *mongo.Database, id string, up CourseUp) (Course, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if up.Name != nil {
		set["name"] = *up.Name
	}
	if up.Description != nil {
		set["description"] = *up.Description
	}
	if up.Instructor != nil {
		set["instructor"] = *up.Instructor
	}
	if up.Price != nil {
		set["price"] = *up.Price
	}
	if up.ImageURL != nil {
		set["image_url"] = *up.ImageURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var crs Course
	err := db.Collection(database.CoursesCollection).FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&crs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Course{}, ErrNotFound
		}
		return Course{}, fmt.Errorf("updating course[%s]: %w", id, err)
	}
	return crs, nil
}

// Enroll pushes the user onto the enrolled set and returns the updated
// course. The push does not dedupe: callers are expected to have checked
// membership beforehand, and two racing requests can still both get in.
func Enroll(ctx context.Context, db *mongo.Database, courseID string, userID string) (Course, error) {
	update := bson.M{
		"$push": bson.M{"students_enrolled": userID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var crs Course
	err := db.Collection(database.CoursesCollection).FindOneAndUpdate(ctx, bson.M{"_id": courseID}, update, opts).Decode(&crs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Course{}, ErrNotFound
		}
		return Course{}, fmt.Errorf("enrolling user[%s] into course[%s]: %w", userID, courseID, err)
	}
	return crs, nil
}
