package service

import (
	"context"

	"github.com/deppfellow/signifylearn/internal/model"
	"github.com/deppfellow/signifylearn/internal/mongoerr"
	"github.com/deppfellow/signifylearn/internal/repository"
	"github.com/deppfellow/signifylearn/internal/server"
)

type ModuleService struct {
	server *server.Server
	store  repository.DocumentStore
}

func NewModuleService(s *server.Server, store repository.DocumentStore) *ModuleService {
	return &ModuleService{server: s, store: store}
}

// ListModules returns up to limit modules, unfiltered.
func (s *ModuleService) ListModules(ctx context.Context, limit int64) ([]model.Document, error) {
	docs, err := s.store.Query(ctx, model.CollectionModule, nil, limit)
	if err != nil {
		return nil, mongoerr.HandleError(err, model.CollectionModule)
	}
	return model.StringifyIDs(docs), nil
}
