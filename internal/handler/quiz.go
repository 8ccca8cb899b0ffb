package handler

import (
	"net/http"

	"github.com/deppfellow/signifylearn/internal/server"
	"github.com/deppfellow/signifylearn/internal/service"
	"github.com/deppfellow/signifylearn/internal/validation"
	"github.com/labstack/echo/v4"
)

type QuizHandler struct {
	Handler
	quizService *service.QuizService
}

func NewQuizHandler(s *server.Server, quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		Handler:     NewHandler(s),
		quizService: quizService,
	}
}

// SubmitQuizRequest carries the submitted answer indices. An empty list is
// accepted and graded as wrong; a missing one is rejected.
type SubmitQuizRequest struct {
	ID      string `param:"id" json:"-" validate:"required"`
	UserID  string `json:"user_id"`
	Answers []int  `json:"answers" validate:"required"`
}

func (r *SubmitQuizRequest) Validate() error {
	return validation.Struct(r)
}

func (h *QuizHandler) ListQuizzes(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *LimitRequest) (*ItemsResponse, error) {
		items, err := h.quizService.ListQuizzes(c.Request().Context(), req.EffectiveLimit())
		if err != nil {
			return nil, err
		}
		return newItemsResponse(items), nil
	}, http.StatusOK, &LimitRequest{})(c)
}

func (h *QuizHandler) SubmitQuiz(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, req *SubmitQuizRequest) (*service.SubmitResult, error) {
		return h.quizService.Submit(c.Request().Context(), req.ID, req.UserID, req.Answers)
	}, http.StatusOK, &SubmitQuizRequest{})(c)
}
