// Package model holds the document shapes stored in each collection.
//
// Every type maps to exactly one collection (the lowercase type name).
// Relationships between documents are soft string references; the store
// does not enforce them.
package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	CollectionUserProfile  = "userprofile"
	CollectionGesture      = "gesture"
	CollectionModule       = "module"
	CollectionQuizQuestion = "quizquestion"
	CollectionProgress     = "progress"
)

// Document is a stored record returned to clients as-is, unknown keys included.
type Document = bson.M

// StringifyID renders the document identifier as a string in place.
func StringifyID(doc Document) Document {
	switch id := doc["_id"].(type) {
	case nil:
	case primitive.ObjectID:
		doc["_id"] = id.Hex()
	case string:
	default:
		doc["_id"] = fmt.Sprint(id)
	}
	return doc
}

// StringifyIDs applies StringifyID to every document.
func StringifyIDs(docs []Document) []Document {
	for _, doc := range docs {
		StringifyID(doc)
	}
	return docs
}
