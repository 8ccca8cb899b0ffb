package service

import (
	"context"

	"github.com/deppfellow/signifylearn/internal/errs"
)

// RootMessage is returned by GET /.
const RootMessage = "SignifyLearn Backend is running"

const (
	maxDiagnosticCollections = 10
	maxDiagnosticMessage     = 80
)

// StoreInfo is the part of the database the diagnostics report on.
type StoreInfo interface {
	Available() error
	URLConfigured() bool
	Name() string
	Collections(ctx context.Context) ([]string, error)
}

// Diagnostics is the connectivity report served by GET /test.
// Failures are described inside the report, never returned as errors.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// RootResponse is the liveness message served by GET /.
type RootResponse struct {
	Message string `json:"message"`
}

type SystemService struct {
	store StoreInfo
}

func NewSystemService(store StoreInfo) *SystemService {
	return &SystemService{store: store}
}

func (s *SystemService) Root() *RootResponse {
	return &RootResponse{Message: RootMessage}
}

func (s *SystemService) Diagnostics(ctx context.Context) *Diagnostics {
	report := &Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store == nil || s.store.Available() != nil {
		return report
	}

	urlStatus := "❌ Not Set"
	if s.store.URLConfigured() {
		urlStatus = "✅ Set"
	}
	name := s.store.Name()

	report.Database = "✅ Available"
	report.DatabaseURL = &urlStatus
	report.DatabaseName = &name
	report.ConnectionStatus = "Connected"

	collections, err := s.store.Collections(ctx)
	if err != nil {
		report.Database = "⚠️ Connected but Error: " + errs.Truncate(err.Error(), maxDiagnosticMessage)
		return report
	}

	if len(collections) > maxDiagnosticCollections {
		collections = collections[:maxDiagnosticCollections]
	}
	report.Collections = collections
	report.Database = "✅ Connected & Working"

	return report
}
