package model

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuestUserID is recorded on progress submitted without a user.
const GuestUserID = "guest"

// Progress records one completed activity. It is append-only: every quiz
// submission inserts a new document, repeated ones included.
type Progress struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    string             `bson:"user_id" json:"user_id" validate:"required"`
	ModuleID  *string            `bson:"module_id,omitempty" json:"module_id,omitempty"`
	QuizID    *string            `bson:"quiz_id,omitempty" json:"quiz_id,omitempty"`
	Completed bool               `bson:"completed" json:"completed"`
	Score     *int               `bson:"score,omitempty" json:"score,omitempty"`
	Detail    bson.M             `bson:"detail,omitempty" json:"detail,omitempty"`
}

var validate = validator.New()

// NewQuizProgress builds the progress document for a graded submission.
func NewQuizProgress(userID, quizID string, score int) *Progress {
	if userID == "" {
		userID = GuestUserID
	}
	return &Progress{
		UserID:    userID,
		QuizID:    &quizID,
		Completed: true,
		Score:     &score,
	}
}

// Validate checks the struct tags before the document is written.
func (p *Progress) Validate() error {
	return validate.Struct(p)
}
