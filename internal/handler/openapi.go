package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API documentation UI from the embedded assets.
type OpenAPIHandler struct {
	Handler
	assets fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		assets:  static.Files,
	}
}

// ServeOpenAPIUI writes openapi.html without caching so doc updates show
// up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := fs.ReadFile(h.assets, static.OpenAPIUI)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}
	return nil
}
