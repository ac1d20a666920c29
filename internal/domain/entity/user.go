package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisteredUser is an account document keyed by email. It is created
// once at registration and read-only afterwards.
type RegisteredUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
