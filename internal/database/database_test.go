package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/deppfellow/signifylearn/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/event"
)

func testConfig() *config.Config {
	return &config.Config{
		Primary:       config.Primary{Env: "development"},
		Database:      config.DatabaseConfig{Name: "signifylearn", ConnectTimeout: time.Second},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func TestNew_WithoutURL(t *testing.T) {
	logger := zerolog.Nop()

	db := New(testConfig(), &logger, nil)
	require.NotNil(t, db)

	err := db.Available()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.False(t, db.URLConfigured())
	assert.Equal(t, "signifylearn", db.Name())

	_, err = db.Collections(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, errors.Is(db.Ping(context.Background()), ErrUnavailable))
	assert.NoError(t, db.Close(context.Background()))
}

func TestAvailable_Nil(t *testing.T) {
	var db *Database
	assert.Equal(t, ErrUnavailable, db.Available())
}

func TestCommandMonitor_DisabledOutsideLocal(t *testing.T) {
	logger := zerolog.Nop()
	assert.Nil(t, commandMonitor(testConfig(), &logger, nil))

	cfg := testConfig()
	cfg.Primary.Env = "local"
	assert.NotNil(t, commandMonitor(cfg, &logger, nil))
}

func TestCommandLogger_SlowCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)

	monitor := NewCommandLogger(logger, 50*time.Millisecond)

	fast := &event.CommandSucceededEvent{}
	fast.CommandName = "find"
	fast.Duration = time.Millisecond
	monitor.Succeeded(context.Background(), fast)
	assert.Zero(t, buf.Len())

	slow := &event.CommandSucceededEvent{}
	slow.CommandName = "find"
	slow.Duration = time.Second
	monitor.Succeeded(context.Background(), slow)
	assert.Contains(t, buf.String(), `"slow":true`)
	assert.Contains(t, buf.String(), `"command":"find"`)
}

func TestNew_UnreachableServerKeepsClient(t *testing.T) {
	logger := zerolog.Nop()
	cfg := testConfig()
	cfg.Database.URL = "mongodb://127.0.0.1:1/?directConnection=true"
	cfg.Database.ConnectTimeout = 200 * time.Millisecond

	db := New(cfg, &logger, nil)
	require.NotNil(t, db.Client)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	assert.NoError(t, db.Available())
	assert.True(t, db.URLConfigured())

	err := db.Ping(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnavailable))
}
