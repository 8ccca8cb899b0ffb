package service

import (
	"context"
	"regexp"

	"github.com/deppfellow/signifylearn/internal/model"
	"github.com/deppfellow/signifylearn/internal/mongoerr"
	"github.com/deppfellow/signifylearn/internal/repository"
	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GestureService serves the gesture catalogue and user favorites.
type GestureService struct {
	server *server.Server
	store  repository.DocumentStore
}

func NewGestureService(s *server.Server, store repository.DocumentStore) *GestureService {
	return &GestureService{server: s, store: store}
}

// GestureFilter narrows a gesture listing. Empty fields are ignored.
type GestureFilter struct {
	Category string
	Search   string
	Limit    int64
}

// Filter builds the store filter: exact category, case-insensitive literal
// substring of name, both ANDed when present.
func (f GestureFilter) Filter() bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	return filter
}

func (s *GestureService) ListGestures(ctx context.Context, f GestureFilter) ([]model.Document, error) {
	docs, err := s.store.Query(ctx, model.CollectionGesture, f.Filter(), f.Limit)
	if err != nil {
		return nil, mongoerr.HandleError(err, model.CollectionGesture)
	}
	return model.StringifyIDs(docs), nil
}

func (s *GestureService) GetGesture(ctx context.Context, id string) (model.Document, error) {
	oid, err := validation.ParseObjectID(id, "gesture")
	if err != nil {
		return nil, err
	}

	var doc model.Document
	if err := s.store.FindByID(ctx, model.CollectionGesture, oid, &doc); err != nil {
		return nil, mongoerr.HandleError(err, model.CollectionGesture)
	}
	return model.StringifyID(doc), nil
}

// AddFavorite adds gestureID to the user's favorites, creating the profile
// when it does not exist. The gesture id is stored as given.
func (s *GestureService) AddFavorite(ctx context.Context, gestureID, userID string) error {
	oid, err := validation.ParseObjectID(userID, "user")
	if err != nil {
		return err
	}

	err = s.store.AddToSet(ctx, model.CollectionUserProfile, oid, model.FieldFavorites, gestureID)
	if err != nil {
		return mongoerr.HandleWriteError(err, model.CollectionUserProfile)
	}
	return nil
}
