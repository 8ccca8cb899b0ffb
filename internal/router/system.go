package router

import (
	"github.com/deppfellow/signifylearn/internal/handler"
	"github.com/deppfellow/signifylearn/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the /api group:
// liveness, diagnostics, schema, health and the documentation assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.System.Root)
	r.GET("/test", h.System.Diagnostics)
	r.GET("/schema", h.System.Schema)

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
