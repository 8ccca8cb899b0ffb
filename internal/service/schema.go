package service

import "github.com/deppfellow/signifylearn/internal/model"

// SchemaResponse lists every collection with its field names.
type SchemaResponse struct {
	Collections []model.CollectionSchema `json:"collections"`
}

// SchemaService describes the stored document shapes. It never touches the store.
type SchemaService struct{}

func NewSchemaService() *SchemaService {
	return &SchemaService{}
}

func (s *SchemaService) Describe() *SchemaResponse {
	return &SchemaResponse{Collections: model.Schema()}
}
