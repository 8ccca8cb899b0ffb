package handler

import (
	"net/http"

	"github.com/deppfellow/signifylearn/internal/model"
	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/internal/service"
	"github.com/deppfellow/signifylearn/internal/validation"
	"github.com/labstack/echo/v4"
)

type GestureHandler struct {
	Handler
	gestureService *service.GestureService
}

func NewGestureHandler(s *server.Server, gestureService *service.GestureService) *GestureHandler {
	return &GestureHandler{
		Handler:        NewHandler(s),
		gestureService: gestureService,
	}
}

type ListGesturesRequest struct {
	LimitRequest
	Category string `query:"category"`
	Search   string `query:"search"`
}

func (r *ListGesturesRequest) Validate() error {
	return validation.Struct(r)
}

type GetGestureRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *GetGestureRequest) Validate() error {
	return validation.Struct(r)
}

type AddFavoriteRequest struct {
	ID     string  `param:"id" json:"-" validate:"required"`
	UserID *string `json:"user_id" validate:"required"`
}

func (r *AddFavoriteRequest) Validate() error {
	return validation.Struct(r)
}

func (h *GestureHandler) ListGestures(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *ListGesturesRequest) (*ItemsResponse, error) {
		items, err := h.gestureService.ListGestures(c.Request().Context(), service.GestureFilter{
			Category: req.Category,
			Search:   req.Search,
			Limit:    req.EffectiveLimit(),
		})
		if err != nil {
			return nil, err
		}
		return newItemsResponse(items), nil
	}, http.StatusOK, &ListGesturesRequest{})(c)
}

func (h *GestureHandler) GetGesture(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *GetGestureRequest) (model.Document, error) {
		return h.gestureService.GetGesture(c.Request().Context(), req.ID)
	}, http.StatusOK, &GetGestureRequest{})(c)
}

func (h *GestureHandler) AddFavorite(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *AddFavoriteRequest) (*StatusResponse, error) {
		if err := h.gestureService.AddFavorite(c.Request().Context(), req.ID, *req.UserID); err != nil {
			return nil, err
		}
		return &StatusResponse{Status: "ok"}, nil
	}, http.StatusOK, &AddFavoriteRequest{})(c)
}
