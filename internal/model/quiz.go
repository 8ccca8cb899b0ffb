package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Scores awarded by a quiz submission.
const (
	ScoreCorrect = 100
	ScoreWrong   = 0
)

// QuizQuestion is a single multiple-choice question.
//
// AnswerIndex should be lower than len(Choices); the store does not check it.
// It is a pointer so a document without an answer never grades as correct.
type QuizQuestion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ModuleID    *string            `bson:"module_id" json:"module_id"`
	Prompt      string             `bson:"prompt" json:"prompt"`
	MediaURL    *string            `bson:"media_url" json:"media_url"`
	Choices     []string           `bson:"choices" json:"choices"`
	AnswerIndex *int               `bson:"answer_index" json:"answer_index" validate:"omitempty,min=0"`
}

// Grade compares the first submitted answer with the stored answer index.
// Any further answers are ignored and there is no partial credit.
func (q QuizQuestion) Grade(answers []int) (score int, correct bool) {
	if q.AnswerIndex == nil || len(answers) == 0 {
		return ScoreWrong, false
	}
	if answers[0] != *q.AnswerIndex {
		return ScoreWrong, false
	}
	return ScoreCorrect, true
}
