package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Module is an ordered lesson made of content blocks.
type Module struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title    string             `bson:"title" json:"title"`
	Subtitle *string            `bson:"subtitle" json:"subtitle"`
	Cover    *string            `bson:"cover" json:"cover"`
	Content  []ContentBlock     `bson:"content" json:"content"`
}

// ContentBlock is a tagged value; Extra keeps any additional keys.
type ContentBlock struct {
	Type  string `bson:"type" json:"type"`
	Value string `bson:"value" json:"value"`

	Extra bson.M `bson:",inline" json:"-"`
}
