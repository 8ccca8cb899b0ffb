// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service.
// Every endpoint goes through the same typed pipeline in base.go.
package handler

import (
	"github.com/deppfellow/signifylearn/internal/model"
	"github.com/deppfellow/signifylearn/internal/validation"
)

// DefaultLimit applies when a listing request has no limit.
const DefaultLimit int64 = 20

// EmptyRequest is used by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// LimitRequest is the query of the unfiltered listings.
type LimitRequest struct {
	Limit int64 `query:"limit" validate:"omitempty,min=1,max=500"`
}

func (r *LimitRequest) Validate() error {
	return validation.Struct(r)
}

// EffectiveLimit returns Limit or DefaultLimit.
func (r *LimitRequest) EffectiveLimit() int64 {
	if r.Limit == 0 {
		return DefaultLimit
	}
	return r.Limit
}

// ItemsResponse wraps every listing: {"items": [...]}.
type ItemsResponse struct {
	Items []model.Document `json:"items"`
}

func (r *ItemsResponse) Len() int {
	return len(r.Items)
}

// StatusResponse is returned by write endpoints with no other payload.
type StatusResponse struct {
	Status string `json:"status"`
}

func newItemsResponse(items []model.Document) *ItemsResponse {
	if items == nil {
		items = []model.Document{}
	}
	return &ItemsResponse{Items: items}
}
