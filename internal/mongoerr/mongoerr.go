// Package mongoerr handles document store driver errors.
//
// It classifies errors coming out of the mongo driver and the repository
// layer (missing documents, malformed identifiers, duplicate keys,
// unavailability) and converts them into errs.HTTPError values with
// user-friendly messages.
package mongoerr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/deppfellow/signifylearn/internal/database"
	"github.com/deppfellow/signifylearn/internal/errs"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the category of a store error.
type Kind int

const (
	Other Kind = iota
	NotFound
	InvalidIdentifier
	Unavailable
	DuplicateKey
)

// Classify reports the Kind of err.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case errors.Is(err, primitive.ErrInvalidHex):
		return InvalidIdentifier
	case errors.Is(err, database.ErrUnavailable),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.As(err, new(topology.ServerSelectionError)),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err) && !errors.Is(err, context.Canceled):
		return Unavailable
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	}
	return Other
}

// entityNames splits the collection names that are single lowercase words.
var entityNames = map[string]string{
	"userprofile":  "user_profile",
	"quizquestion": "quiz_question",
}

// getEntityName turns a collection name into a display name:
// "gesture" -> "Gesture", "quizquestion" -> "Quiz Question".
func getEntityName(collection string) string {
	if collection == "" {
		return "Resource"
	}
	if name, ok := entityNames[collection]; ok {
		collection = name
	}
	return humanizeText(collection)
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// generateErrorCode builds codes like GESTURE_ALREADY_EXISTS.
func generateErrorCode(collection, action string) string {
	domain := "RECORD"
	if collection != "" {
		domain = errs.MakeUpperCaseWithUnderscores(strings.ToLower(getEntityName(collection)))
	}
	return fmt.Sprintf("%s_%s", domain, action)
}

// HandleError converts a read-path store error into an HTTP error.
//
//   - *errs.HTTPError: returned unchanged
//   - missing document: 404 "<Entity> not found"
//   - malformed identifier: 400 INVALID_IDENTIFIER
//   - unavailable store: 503
//   - duplicate key: 400 <ENTITY>_ALREADY_EXISTS
//   - anything else: 500 carrying the truncated driver message
func HandleError(err error, collection string) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	entity := getEntityName(collection)

	switch Classify(err) {
	case NotFound:
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", entity), true, nil)
	case InvalidIdentifier:
		return errs.NewInvalidIdentifierError(fmt.Sprintf("Invalid %s identifier", strings.ToLower(entity)))
	case Unavailable:
		return errs.NewServiceUnavailableError(errs.Truncate(err.Error(), errs.MaxMessageLength))
	case DuplicateKey:
		code := generateErrorCode(collection, "ALREADY_EXISTS")
		return errs.NewBadRequestError(fmt.Sprintf("A %s with this identifier already exists", strings.ToLower(entity)), true, &code, nil, nil)
	}

	return errs.NewStorageError(err)
}

// HandleWriteError converts an error on a write path. Every failure is
// reported as 400; not-found and identifier codes are kept so clients can
// still tell them apart.
func HandleWriteError(err error, collection string) error {
	mapped := HandleError(err, collection)
	if mapped == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if !errors.As(mapped, &httpErr) || httpErr.Status == http.StatusBadRequest {
		return mapped
	}

	switch httpErr.Status {
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return &errs.HTTPError{
			Code:     httpErr.Code,
			Message:  httpErr.Message,
			Status:   http.StatusBadRequest,
			Override: httpErr.Override,
			Errors:   httpErr.Errors,
			Action:   httpErr.Action,
		}
	}

	return errs.NewBadRequestError(errs.Truncate(err.Error(), errs.MaxMessageLength), false, nil, nil, nil)
}
