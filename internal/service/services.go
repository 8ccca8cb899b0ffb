package service

import (
	"github.com/deppfellow/signifylearn/internal/repository"
	"github.com/deppfellow/signifylearn/internal/server"
)

// Services groups every service the handlers depend on.
type Services struct {
	Gesture *GestureService
	Module  *ModuleService
	Quiz    *QuizService
	Schema  *SchemaService
	System  *SystemService
}

// NewServices wires the services to the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Gesture: NewGestureService(s, repos.Store),
		Module:  NewModuleService(s, repos.Store),
		Quiz:    NewQuizService(s, repos.Store),
		Schema:  NewSchemaService(),
		System:  NewSystemService(s.DB),
	}, nil
}
