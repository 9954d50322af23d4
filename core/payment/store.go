package payment

import (
	"context"

	"github.com/irsalhamdi/course-market/core/course"
	"github.com/irsalhamdi/course-market/core/progress"
	"github.com/irsalhamdi/course-market/core/user"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore implements Store on top of the shared document database.
type MongoStore struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) FetchCourse(ctx context.Context, courseID string) (course.Course, error) {
	return course.Fetch(ctx, s.db, courseID)
}

func (s *MongoStore) EnrollStudent(ctx context.Context, courseID string, userID string) (course.Course, error) {
	return course.Enroll(ctx, s.db, courseID, userID)
}

func (s *MongoStore) CreateProgress(ctx context.Context, prog progress.Progress) error {
	return progress.Create(ctx, s.db, prog)
}

func (s *MongoStore) PushUserEnrollment(ctx context.Context, userID string, courseID string, progressID string) (user.User, error) {
	return user.PushEnrollment(ctx, s.db, userID, courseID, progressID)
}

func (s *MongoStore) FetchUser(ctx context.Context, userID string) (user.User, error) {
	return user.Fetch(ctx, s.db, userID)
}
