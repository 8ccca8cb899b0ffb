package repository

import (
	"context"

	"github.com/deppfellow/signifylearn/internal/database"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements DocumentStore on a mongo database.
type MongoStore struct {
	db        *mongo.Database
	available func() error
}

// NewMongoStore wraps the application database. While the database is
// unavailable every call fails with an error wrapping ErrUnavailable.
func NewMongoStore(db *database.Database) *MongoStore {
	return newMongoStore(db.DB, db.Available)
}

func newMongoStore(db *mongo.Database, available func() error) *MongoStore {
	if available == nil {
		available = func() error { return nil }
	}
	return &MongoStore{db: db, available: available}
}

func (s *MongoStore) collection(name string) (*mongo.Collection, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	if s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db.Collection(name), nil
}

// Insert implements DocumentStore.
func (s *MongoStore) Insert(ctx context.Context, collection string, document any) (bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	doc, err := toDocument(document)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s document", collection)
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, errors.Wrapf(errors.WithStack(err), "inserting %s document", collection)
	}
	doc["_id"] = res.InsertedID

	return doc, nil
}

// Query implements DocumentStore.
func (s *MongoStore) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := coll.Find(ctx, filter, options.Find().SetLimit(effectiveLimit(limit)))
	if err != nil {
		return nil, errors.Wrapf(errors.WithStack(err), "querying %s", collection)
	}

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(errors.WithStack(err), "reading %s cursor", collection)
	}

	return docs, nil
}

// FindByID implements DocumentStore.
func (s *MongoStore) FindByID(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}

	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		return errors.Wrapf(errors.WithStack(err), "finding %s %s", collection, id.Hex())
	}
	return nil
}

// AddToSet implements DocumentStore.
func (s *MongoStore) AddToSet(ctx context.Context, collection string, id primitive.ObjectID, field string, value any) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}

	_, err = coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{field: value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrapf(errors.WithStack(err), "updating %s %s", collection, id.Hex())
	}
	return nil
}
