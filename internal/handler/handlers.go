package handler

import (
	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	System  *SystemHandler
	Gesture *GestureHandler
	Module  *ModuleHandler
	Quiz    *QuizHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		System:  NewSystemHandler(s, services.System, services.Schema),
		Gesture: NewGestureHandler(s, services.Gesture),
		Module:  NewModuleHandler(s, services.Module),
		Quiz:    NewQuizHandler(s, services.Quiz),
	}
}
