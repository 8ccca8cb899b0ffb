package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/signifylearn/internal/config"
	"github.com/deppfellow/signifylearn/internal/errs"
	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			RateLimit:     config.RateLimitConfig{Requests: 1, Window: time.Minute},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, "upstream-id", seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Len(t, seen, 36)
}

func TestContextEnhancer(t *testing.T) {
	e := echo.New()
	s := testServer()

	var fromEcho, fromCtx *zerolog.Logger
	h := NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		fromEcho = GetLogger(c)
		fromCtx = LoggerFromContext(c.Request().Context())
		return nil
	})

	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
	require.NotNil(t, fromEcho)
	assert.Same(t, fromEcho, fromCtx)

	assert.NotNil(t, LoggerFromContext(context.Background()))
}

type stubCounter struct {
	count int64
	err   error
}

func (s *stubCounter) Incr(context.Context, string, time.Duration) (int64, time.Duration, error) {
	s.count++
	return s.count, 1500 * time.Millisecond, s.err
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	s := testServer()
	counter := &stubCounter{}
	limiter := NewRateLimitMiddlewareWithCounter(s, counter)
	require.True(t, limiter.Enabled())

	h := limiter.Limit()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = httptest.NewRecorder()
	err := h(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec))
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimitMiddlewareWithCounter(testServer(), &stubCounter{count: 100, err: errors.New("redis down")})

	h := limiter.Limit()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())))
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	assert.False(t, NewRateLimitMiddleware(testServer()).Enabled())
}

func TestGlobalErrorHandler(t *testing.T) {
	e := echo.New()
	global := NewGlobalMiddlewares(testServer())

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", errs.NewInvalidIdentifierError("bad id"), http.StatusBadRequest, errs.CodeInvalidIdentifier},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"missing document", mongo.ErrNoDocuments, http.StatusNotFound, "NOT_FOUND"},
		{"driver error", errors.New("socket closed"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			global.GlobalErrorHandler(tt.err, e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))

			assert.Equal(t, tt.status, rec.Code)
			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.status, body.Status)
		})
	}
}

func TestGlobalErrorHandler_TruncatesMessage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()

	NewGlobalMiddlewares(testServer()).GlobalErrorHandler(
		errs.NewBadRequestError(strings.Repeat("a", 500), false, nil, nil, nil),
		e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec),
	)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Message, errs.MaxMessageLength)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusFromError(http.StatusOK, nil))
	assert.Equal(t, http.StatusNotFound, statusFromError(http.StatusOK, errs.NewNotFoundError("x", false, nil)))
	assert.Equal(t, http.StatusTeapot, statusFromError(http.StatusOK, echo.NewHTTPError(http.StatusTeapot)))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(http.StatusOK, errors.New("x")))
}
