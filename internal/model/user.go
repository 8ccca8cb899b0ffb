package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldFavorites is the only UserProfile field this service writes.
const FieldFavorites = "favorites"

// UserProfile is stored in the userprofile collection.
//
// Profiles are seeded out-of-band; the API only ever adds favorites, and
// creates a profile holding nothing but favorites when none exists yet.
type UserProfile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	AvatarURL     *string            `bson:"avatar_url" json:"avatar_url"`
	Points        int                `bson:"points" json:"points" validate:"min=0"`
	Level         int                `bson:"level" json:"level" validate:"min=1"`
	Streak        int                `bson:"streak" json:"streak" validate:"min=0"`
	Badges        []string           `bson:"badges" json:"badges"`
	Favorites     []string           `bson:"favorites" json:"favorites"`
	Accessibility Accessibility      `bson:"accessibility" json:"accessibility"`
}

// Accessibility holds the display preferences of a user. Keys the API does
// not know about are kept in Extra so they survive a round-trip.
type Accessibility struct {
	DarkMode      bool    `bson:"darkMode" json:"darkMode"`
	HighContrast  bool    `bson:"highContrast" json:"highContrast"`
	FontScale     float64 `bson:"fontScale" json:"fontScale"`
	ReducedMotion bool    `bson:"reducedMotion" json:"reducedMotion"`

	Extra bson.M `bson:",inline" json:"-"`
}
