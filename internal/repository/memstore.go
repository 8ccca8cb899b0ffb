package repository

import (
	"context"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemStore is an in-memory DocumentStore used by tests and local tooling.
//
// Filters support equality and primitive.Regex values. Documents go
// through a bson round trip on the way in and out, so callers see the same
// types the driver would produce.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
	failure     error
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{collections: map[string][]bson.M{}}
}

// Fail makes every subsequent call return err. Passing nil clears it.
func (s *MemStore) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Documents returns copies of every document in the collection.
func (s *MemStore) Documents(collection string) []bson.M {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]bson.M, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		out = append(out, cloneDocument(doc))
	}
	return out
}

// Insert implements DocumentStore.
func (s *MemStore) Insert(_ context.Context, collection string, document any) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return nil, s.failure
	}

	doc, err := toDocument(document)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s document", collection)
	}
	doc = cloneDocument(doc)
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}

	s.collections[collection] = append(s.collections[collection], doc)
	return cloneDocument(doc), nil
}

// Query implements DocumentStore.
func (s *MemStore) Query(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	limit = effectiveLimit(limit)
	docs := []bson.M{}
	for _, doc := range s.collections[collection] {
		if int64(len(docs)) >= limit {
			break
		}
		if matches(doc, filter) {
			docs = append(docs, cloneDocument(doc))
		}
	}
	return docs, nil
}

// FindByID implements DocumentStore.
func (s *MemStore) FindByID(_ context.Context, collection string, id primitive.ObjectID, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return s.failure
	}

	doc := s.find(collection, id)
	if doc == nil {
		return mongo.ErrNoDocuments
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// AddToSet implements DocumentStore.
func (s *MemStore) AddToSet(_ context.Context, collection string, id primitive.ObjectID, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return s.failure
	}

	doc := s.find(collection, id)
	if doc == nil {
		s.collections[collection] = append(s.collections[collection], bson.M{
			"_id": id,
			field: primitive.A{value},
		})
		return nil
	}

	set, _ := doc[field].(primitive.A)
	for _, existing := range set {
		if reflect.DeepEqual(existing, value) {
			return nil
		}
	}
	doc[field] = append(set, value)
	return nil
}

func (s *MemStore) find(collection string, id primitive.ObjectID) bson.M {
	for _, doc := range s.collections[collection] {
		if docID, ok := doc["_id"].(primitive.ObjectID); ok && docID == id {
			return doc
		}
	}
	return nil
}

func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		switch want := want.(type) {
		case primitive.Regex:
			s, isString := got.(string)
			if !ok || !isString || !regexMatch(want, s) {
				return false
			}
		default:
			if !ok || !reflect.DeepEqual(got, want) {
				return false
			}
		}
	}
	return true
}

func regexMatch(re primitive.Regex, value string) bool {
	pattern := re.Pattern
	if strings.Contains(re.Options, "i") {
		pattern = "(?i)" + pattern
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return compiled.MatchString(value)
}

func cloneDocument(doc bson.M) bson.M {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return doc
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return doc
	}
	return out
}
