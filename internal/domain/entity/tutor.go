// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tutor is a tutor listing published on the marketplace.
// The Email field identifies the account that created the listing and is
// the owner reference checked on every gated mutation.
type Tutor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Language    string             `bson:"language" json:"language"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Review      int64              `bson:"review" json:"review"` // Counter, mutated only through atomic increments.
}

// TutorUpdate is the fixed allowlist of fields a listing owner may
// overwrite. Arbitrary client-supplied fields are never written through.
type TutorUpdate struct {
	Image       string  `bson:"image" json:"image"`
	Language    string  `bson:"language" json:"language"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`
}
