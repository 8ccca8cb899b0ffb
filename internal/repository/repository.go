// Package repository handles all interactions with the document store.
//
// It exposes a small DocumentStore contract (insert, query, single-document
// lookup and set-add) so services never touch the driver directly, and so
// tests can swap in the in-memory store.
package repository

import (
	"context"

	"github.com/deppfellow/signifylearn/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable is returned by every operation while the store is down.
var ErrUnavailable = database.ErrUnavailable

// DefaultLimit is used when a caller passes a zero limit.
const DefaultLimit int64 = 20

// DocumentStore is the data access contract used by the services.
//
// Returned documents carry every stored attribute, unknown ones included.
// Identifiers are left as stored; callers render them for clients.
type DocumentStore interface {
	// Insert stores document and returns it with its assigned _id.
	Insert(ctx context.Context, collection string, document any) (bson.M, error)

	// Query returns up to limit documents matching filter in store order.
	// A nil or empty filter matches every document.
	Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// FindByID decodes the document with the given id into out.
	// It returns mongo.ErrNoDocuments when nothing matches.
	FindByID(ctx context.Context, collection string, id primitive.ObjectID, out any) error

	// AddToSet adds value to the array field of the document with the given
	// id, creating the document when it does not exist.
	AddToSet(ctx context.Context, collection string, id primitive.ObjectID, field string, value any) error
}

func effectiveLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// toDocument converts any bson-encodable value into a map, so Insert can
// assign and return the identifier without reading the document back.
func toDocument(document any) (bson.M, error) {
	if m, ok := document.(bson.M); ok {
		return m, nil
	}

	raw, err := bson.Marshal(document)
	if err != nil {
		return nil, err
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
