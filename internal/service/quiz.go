package service

import (
	"context"

	"github.com/deppfellow/signifylearn/internal/errs"
	"github.com/deppfellow/signifylearn/internal/model"
	"github.com/deppfellow/signifylearn/internal/mongoerr"
	"github.com/deppfellow/signifylearn/internal/repository"
	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/internal/validation"
)

type QuizService struct {
	server *server.Server
	store  repository.DocumentStore
}

func NewQuizService(s *server.Server, store repository.DocumentStore) *QuizService {
	return &QuizService{server: s, store: store}
}

// SubmitResult is the graded outcome of one submission.
type SubmitResult struct {
	Score   int  `json:"score"`
	Correct bool `json:"correct"`
}

// ListQuizzes returns up to limit quiz questions, unfiltered.
func (s *QuizService) ListQuizzes(ctx context.Context, limit int64) ([]model.Document, error) {
	docs, err := s.store.Query(ctx, model.CollectionQuizQuestion, nil, limit)
	if err != nil {
		return nil, mongoerr.HandleError(err, model.CollectionQuizQuestion)
	}
	return model.StringifyIDs(docs), nil
}

// Submit grades answers against the quiz and records a progress entry.
//
// Every submission inserts a new progress document, repeated ones included.
// Every failure, a missing quiz included, is reported as 400.
func (s *QuizService) Submit(ctx context.Context, quizID, userID string, answers []int) (*SubmitResult, error) {
	oid, err := validation.ParseObjectID(quizID, "quiz")
	if err != nil {
		return nil, err
	}

	var quiz model.QuizQuestion
	if err := s.store.FindByID(ctx, model.CollectionQuizQuestion, oid, &quiz); err != nil {
		return nil, mongoerr.HandleWriteError(err, model.CollectionQuizQuestion)
	}

	score, correct := quiz.Grade(answers)

	progress := model.NewQuizProgress(userID, quizID, score)
	if err := progress.Validate(); err != nil {
		return nil, errs.NewBadRequestError(err.Error(), false, nil, nil, nil)
	}

	if _, err := s.store.Insert(ctx, model.CollectionProgress, progress); err != nil {
		return nil, mongoerr.HandleWriteError(err, model.CollectionProgress)
	}

	return &SubmitResult{Score: score, Correct: correct}, nil
}
