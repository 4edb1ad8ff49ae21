package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"` // stored lowercase, unique index
	Password   string             `json:"-" bson:"password"`  // bcrypt hash, never the plaintext
	Role       string             `json:"role" bson:"role"`
	ProfilePic string             `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
