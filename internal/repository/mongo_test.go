package repository

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns assigned id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := newMongoStore(mt.DB, nil)

		doc, err := store.Insert(context.Background(), "progress", bson.M{"user_id": "guest"})
		require.NoError(mt, err)
		_, ok := doc["_id"].(primitive.ObjectID)
		assert.True(mt, ok)
		assert.Equal(mt, "guest", doc["user_id"])
	})

	mt.Run("insert duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		store := newMongoStore(mt.DB, nil)

		_, err := store.Insert(context.Background(), "progress", bson.M{"user_id": "guest"})
		require.Error(mt, err)
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})

	mt.Run("query decodes batch", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + ".gesture"
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Halo"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Makan"}},
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)
		store := newMongoStore(mt.DB, nil)

		docs, err := store.Query(context.Background(), "gesture", nil, 20)
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, "Halo", docs[0]["name"])
		assert.Equal(mt, "Makan", docs[1]["name"])
	})

	mt.Run("find by id missing", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + ".gesture"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		store := newMongoStore(mt.DB, nil)

		var out bson.M
		err := store.FindByID(context.Background(), "gesture", primitive.NewObjectID(), &out)
		assert.True(mt, errors.Is(err, mongo.ErrNoDocuments))
	})

	mt.Run("add to set upserts", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 0}})
		store := newMongoStore(mt.DB, nil)

		err := store.AddToSet(context.Background(), "userprofile", primitive.NewObjectID(), "favorites", "g1")
		assert.NoError(mt, err)
	})

	mt.Run("unavailable", func(mt *mtest.T) {
		store := newMongoStore(mt.DB, func() error { return ErrUnavailable })

		_, err := store.Query(context.Background(), "gesture", nil, 0)
		assert.True(mt, errors.Is(err, ErrUnavailable))
	})
}
