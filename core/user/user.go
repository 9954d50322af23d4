package user

import "time"

type User struct {
	ID             string    `json:"id" bson:"_id"`
	Email          string    `json:"email" bson:"email"`
	FirstName      string    `json:"firstName" bson:"first_name"`
	LastName       string    `json:"lastName" bson:"last_name"`
	PasswordHash   []byte    `json:"-" bson:"password_hash"`
	Role           string    `json:"role" bson:"role"`
	Courses        []string  `json:"courses" bson:"courses"`
	CourseProgress []string  `json:"courseProgress" bson:"course_progress"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updated_at"`
}

type UserSignup struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
