package repository

import (
	"github.com/deppfellow/signifylearn/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Store DocumentStore
}

// NewRepositories builds the mongo-backed store on top of the server's
// database connection.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Store: NewMongoStore(s.DB),
	}
}
