// Package database owns the single long-lived MongoDB client.
//
// It handles:
//   - connecting with the configured URL and timeout
//   - wiring command logging (local env) and New Relic instrumentation
//     (nrmongo) into the driver's command monitor
//   - tracking whether the store is usable, so the server can still start
//     and report unavailability when the URL is missing or the server is down
package database

import (
	"context"
	"time"

	"github.com/deppfellow/signifylearn/internal/config"
	loggerConfig "github.com/deppfellow/signifylearn/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is reported by every store operation while no client exists.
var ErrUnavailable = errors.New("document store is not available")

// DatabasePingTimeout is used when no connect timeout is configured.
const DatabasePingTimeout = 10 * time.Second

// Database wraps the mongo client and the selected database.
//
// Client and DB are nil when no client could be created (missing URL or an
// invalid connection string); Available then returns the reason wrapped in
// ErrUnavailable. An unreachable server keeps the client, and driver calls
// fail until it comes back.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database

	name    string
	url     string
	connErr error
	log     *zerolog.Logger
}

// New creates the MongoDB client and pings it once.
//
// It never fails: a missing URL is recorded so dependent endpoints can answer
// with an explicit error, and a failed ping is only logged.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) *Database {
	database := &Database{
		name: cfg.Database.Name,
		url:  cfg.Database.URL,
		log:  logger,
	}

	if cfg.Database.URL == "" {
		database.connErr = errors.Wrap(ErrUnavailable, "database url is not configured")
		logger.Warn().Msg("database url is not configured, document store disabled")
		return database
	}

	timeout := cfg.Database.ConnectTimeout
	if timeout <= 0 {
		timeout = DatabasePingTimeout
	}

	clientOpts := options.Client().
		ApplyURI(cfg.Database.URL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	if monitor := commandMonitor(cfg, logger, loggerService); monitor != nil {
		clientOpts.SetMonitor(monitor)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		database.connErr = errors.Wrapf(ErrUnavailable, "failed to connect: %v", err)
		logger.Error().Err(err).Msg("failed to create mongo client")
		return database
	}

	database.Client = client
	database.DB = client.Database(cfg.Database.Name)

	// The driver keeps reconnecting in the background; a failed first ping is not fatal.
	if err := client.Ping(ctx, nil); err != nil {
		logger.Warn().Err(err).Msg("database is not reachable yet, serving degraded until it recovers")
		return database
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	return database
}

// commandMonitor builds the driver monitor.
//
// In the local env every command is logged; when New Relic is running the
// nrmongo monitor records datastore segments and then calls the local one.
func commandMonitor(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) *event.CommandMonitor {
	var monitor *event.CommandMonitor

	if cfg.Primary.Env == "local" {
		mongoLogger := loggerConfig.NewMongoLogger(logger.GetLevel())
		monitor = NewCommandLogger(mongoLogger, cfg.Observability.Logging.SlowQueryThreshold)
	}

	if loggerService != nil && loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}

	return monitor
}

// NewCommandLogger logs every driver command. Commands slower than slow are
// logged at warn level; slow <= 0 disables the check.
func NewCommandLogger(logger zerolog.Logger, slow time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			logger.Debug().
				Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Str("body", evt.Command.String()).
				Msg("mongo command started")
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			e := logger.Debug()
			if slow > 0 && evt.Duration >= slow {
				e = logger.Warn().Bool("slow", true)
			}
			e.Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Msg("mongo command succeeded")
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			logger.Error().
				Int64("request_id", evt.RequestID).
				Str("command", evt.CommandName).
				Dur("duration", evt.Duration).
				Str("failure", evt.Failure).
				Msg("mongo command failed")
		},
	}
}

// Available returns nil when a client exists, otherwise an error wrapping
// ErrUnavailable. Use Ping for the live state of the server.
func (db *Database) Available() error {
	if db == nil {
		return ErrUnavailable
	}
	if db.Client == nil {
		if db.connErr != nil {
			return db.connErr
		}
		return ErrUnavailable
	}
	return nil
}

// Name returns the configured database name.
func (db *Database) Name() string {
	return db.name
}

// URLConfigured reports whether a connection URL was provided.
func (db *Database) URLConfigured() bool {
	return db.url != ""
}

// Ping checks the server is reachable right now.
func (db *Database) Ping(ctx context.Context) error {
	if err := db.Available(); err != nil {
		return err
	}
	return errors.Wrap(db.Client.Ping(ctx, nil), "pinging database")
}

// Collections lists the collection names of the configured database.
func (db *Database) Collections(ctx context.Context) ([]string, error) {
	if err := db.Available(); err != nil {
		return nil, err
	}
	names, err := db.DB.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "listing collections")
	}
	return names, nil
}

// Close disconnects the client. It is a no-op when no client was created.
func (db *Database) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	db.log.Info().Msg("closing database connection")
	return errors.Wrap(db.Client.Disconnect(ctx), "disconnecting from database")
}
