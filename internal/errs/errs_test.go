package errs

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "ąčęėįš...", Truncate("ąčęėįšųūž-long", 9))
}

func TestHTTPError_Is(t *testing.T) {
	err := NewNotFoundError("Gesture not found", true, nil)
	wrapped := errors.Join(errors.New("context"), err)

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
}

func TestNewInvalidIdentifierError(t *testing.T) {
	err := NewInvalidIdentifierError("invalid gesture id")
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidIdentifier, err.Code)
	assert.True(t, err.Override)
}

func TestNewStorageError_TruncatesMessage(t *testing.T) {
	err := NewStorageError(errors.New(strings.Repeat("x", 500)))
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Len(t, err.Message, MaxMessageLength)
	assert.True(t, strings.HasSuffix(err.Message, "..."))
}

func TestWithMessage_Copies(t *testing.T) {
	base := NewServiceUnavailableError("down")
	changed := base.WithMessage("document store unavailable")

	assert.Equal(t, "down", base.Message)
	assert.Equal(t, "document store unavailable", changed.Message)
	assert.Equal(t, base.Status, changed.Status)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError("30")
	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	if assert.NotNil(t, err.Action) {
		assert.Equal(t, ActionTypeRetry, err.Action.Type)
		assert.Equal(t, "30", err.Action.Value)
	}
}
