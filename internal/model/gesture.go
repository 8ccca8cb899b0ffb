package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Gesture is one sign, with media references and step-by-step instructions.
type Gesture struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Category   string             `bson:"category" json:"category"`
	Difficulty string             `bson:"difficulty" json:"difficulty"`
	Thumbnail  *string            `bson:"thumbnail" json:"thumbnail"`
	VideoURL   *string            `bson:"video_url" json:"video_url"`
	Steps      []string           `bson:"steps" json:"steps"`
	Examples   []string           `bson:"examples" json:"examples"`
}
