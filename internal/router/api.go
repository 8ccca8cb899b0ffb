package router

import (
	"github.com/deppfellow/signifylearn/internal/handler"
	"github.com/deppfellow/signifylearn/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the /api group. Write endpoints go through
// the rate limiter.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := r.Group("/api")
	limit := m.RateLimit.Limit()

	gestures := api.Group("/gestures")
	gestures.GET("", h.Gesture.ListGestures)
	gestures.GET("/:id", h.Gesture.GetGesture)
	gestures.POST("/:id/favorite", h.Gesture.AddFavorite, limit)

	api.GET("/modules", h.Module.ListModules)
	api.GET("/quizzes", h.Quiz.ListQuizzes)
	api.POST("/quiz/:id/submit", h.Quiz.SubmitQuiz, limit)
}
