package handler

import (
	"net/http"

	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/internal/service"
	"github.com/labstack/echo/v4"
)

type ModuleHandler struct {
	Handler
	moduleService *service.ModuleService
}

func NewModuleHandler(s *server.Server, moduleService *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{
		Handler:       NewHandler(s),
		moduleService: moduleService,
	}
}

func (h *ModuleHandler) ListModules(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *LimitRequest) (*ItemsResponse, error) {
		items, err := h.moduleService.ListModules(c.Request().Context(), req.EffectiveLimit())
		if err != nil {
			return nil, err
		}
		return newItemsResponse(items), nil
	}, http.StatusOK, &LimitRequest{})(c)
}
