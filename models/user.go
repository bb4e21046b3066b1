package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password,omitempty"`
	Role      string             `bson:"role" json:"role"`
	LastLogin time.Time          `bson:"last_login" json:"lastLogin"`
}

// Sanitize blanks the stored password hash before the user is written
// into a response body.
func (u User) Sanitize() User {
	u.Password = ""
	return u
}
