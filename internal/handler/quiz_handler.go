package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/middleware"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/response"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/service"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/validator"
)

// QuizHandler drives the per-user quiz session over HTTP.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// StartRequest is the payload for beginning a quiz attempt.
type StartRequest struct {
	BankID string `json:"bank_id" binding:"required,max=128"`
}

// AnswerRequest is the payload for recording an option choice.
type AnswerRequest struct {
	OptionIndex *int `json:"option_index" binding:"required,min=0,max=3"`
}

// Start godoc
// POST /api/v1/quiz/start
// Begins a fresh attempt, replacing any session already in progress.
func (h *QuizHandler) Start(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req StartRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	state, err := h.quizService.Start(c.Request.Context(), claims.UserID, quiz.BankID(req.BankID))
	if err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusCreated, state)
}

// Answer godoc
// POST /api/v1/quiz/answer
// Records the choice for the current question without advancing.
func (h *QuizHandler) Answer(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req AnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	state, err := h.quizService.Answer(claims.UserID, *req.OptionIndex)
	if err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, state)
}

// Next godoc
// POST /api/v1/quiz/next
// Advances the cursor; on the last question this submits the attempt.
func (h *QuizHandler) Next(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	state, err := h.quizService.Next(claims.UserID)
	if err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, state)
}

// Previous godoc
// POST /api/v1/quiz/previous
// Moves back one question, keeping any recorded answer.
func (h *QuizHandler) Previous(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	state, err := h.quizService.Previous(claims.UserID)
	if err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, state)
}

// State godoc
// GET /api/v1/quiz/state
// Returns the live session view.
func (h *QuizHandler) State(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	state, err := h.quizService.State(claims.UserID)
	if err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, state)
}

// Results godoc
// GET /api/v1/quiz/results
// Returns the submitted attempt's score and per-question review.
func (h *QuizHandler) Results(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	results, err := h.quizService.Results(claims.UserID)
	if err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, results)
}

// Retry godoc
// POST /api/v1/quiz/retry
// Starts a fresh attempt on the same bank.
func (h *QuizHandler) Retry(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	state, err := h.quizService.Retry(c.Request.Context(), claims.UserID)
	if err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusCreated, state)
}

// Quit godoc
// POST /api/v1/quiz/quit
// Discards the session without recording anything.
func (h *QuizHandler) Quit(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.quizService.Quit(claims.UserID); err != nil {
		h.failQuiz(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// failQuiz maps quiz domain errors to response codes.
func (h *QuizHandler) failQuiz(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quiz.ErrUnknownBank):
		response.Fail(c, http.StatusNotFound, response.ErrUnknownBank)
	case errors.Is(err, quiz.ErrInvalidOption):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidOption)
	case errors.Is(err, quiz.ErrCompleted):
		response.Fail(c, http.StatusConflict, response.ErrSessionCompleted)
	case errors.Is(err, service.ErrNoActiveSession):
		response.Fail(c, http.StatusNotFound, response.ErrNoActiveSession)
	case errors.Is(err, service.ErrNotCompleted):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
