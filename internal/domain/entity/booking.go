package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking records that a user booked a tutor listing. Email is the
// booking user's address (the owner for gated reads); TutorID is a
// reference to the booked listing. Review holds an optional free-text
// review set after the session.
type Booking struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TutorID  string             `bson:"tutorId,omitempty" json:"tutorId,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Language string             `bson:"language,omitempty" json:"language,omitempty"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
	Review   string             `bson:"review,omitempty" json:"review,omitempty"`
}
