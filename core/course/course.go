package course

import "time"

type Course struct {
	ID               string    `json:"id" bson:"_id"`
	Name             string    `json:"name" bson:"name"`
	Description      string    `json:"description" bson:"description"`
	Instructor       string    `json:"instructor" bson:"instructor"`
	ImageURL         string    `json:"imageUrl" bson:"image_url"`
	Price            int       `json:"price" bson:"price"`
	StudentsEnrolled []string  `json:"studentsEnrolled" bson:"students_enrolled"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updated_at"`
}

type CourseNew struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Instructor  string `json:"instructor" validate:"required"`
	Price       int    `json:"price" validate:"required,gte=0,lte=100000"`
	ImageURL    string `json:"imageUrl" validate:"required"`
}

type CourseUp struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Instructor  *string `json:"instructor"`
	Price       *int    `json:"price" validate:"omitempty,gte=0,lte=100000"`
	ImageURL    *string `json:"imageUrl"`
}

// HasStudent reports whether the user already appears in the enrolled set.
func (c Course) HasStudent(userID string) bool {
	for _, id := range c.StudentsEnrolled {
		if id == userID {
			return true
		}
	}
	return false
}
