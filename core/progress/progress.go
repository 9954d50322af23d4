package progress

import (
	"time"

	"github.com/irsalhamdi/course-market/validate"
)

// Progress tracks which course videos a user has completed. One record exists
// per (course, user) pair, created at enrollment with an empty completed set.
type Progress struct {
	ID              string    `json:"id" bson:"_id"`
	CourseID        string    `json:"courseId" bson:"course_id"`
	UserID          string    `json:"userId" bson:"user_id"`
	CompletedVideos []string  `json:"completedVideos" bson:"completed_videos"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}

func New(courseID string, userID string) Progress {
	now := time.Now().UTC()
	return Progress{
		ID:              validate.GenerateID(),
		CourseID:        courseID,
		UserID:          userID,
		CompletedVideos: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
