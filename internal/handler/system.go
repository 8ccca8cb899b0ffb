package handler

import (
	"net/http"

	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/internal/service"
	"github.com/labstack/echo/v4"
)

// SystemHandler serves the root message, the store diagnostics and the
// collection schema.
type SystemHandler struct {
	Handler
	systemService *service.SystemService
	schemaService *service.SchemaService
}

func NewSystemHandler(s *server.Server, systemService *service.SystemService, schemaService *service.SchemaService) *SystemHandler {
	return &SystemHandler{
		Handler:       NewHandler(s),
		systemService: systemService,
		schemaService: schemaService,
	}
}

func (h *SystemHandler) Root(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) (*service.RootResponse, error) {
		return h.systemService.Root(), nil
	}, http.StatusOK, &EmptyRequest{})(c)
}

// Diagnostics always answers 200; failures are described in the body.
func (h *SystemHandler) Diagnostics(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) (*service.Diagnostics, error) {
		return h.systemService.Diagnostics(c.Request().Context()), nil
	}, http.StatusOK, &EmptyRequest{})(c)
}

func (h *SystemHandler) Schema(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) (*service.SchemaResponse, error) {
		return h.schemaService.Describe(), nil
	}, http.StatusOK, &EmptyRequest{})(c)
}
