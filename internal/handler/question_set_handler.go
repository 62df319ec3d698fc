package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/middleware"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/response"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/service"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/validator"
)

// QuestionSetHandler handles the teacher question editor endpoints.
type QuestionSetHandler struct {
	setService *service.QuestionSetService
}

// NewQuestionSetHandler creates a new QuestionSetHandler.
func NewQuestionSetHandler(setService *service.QuestionSetService) *QuestionSetHandler {
	return &QuestionSetHandler{setService: setService}
}

// Get godoc
// GET /api/v1/editor/sets/:branch/:subject
// Returns the question set for a branch/subject pair.
func (h *QuestionSetHandler) Get(c *gin.Context) {
	branch := c.Param("branch")
	subject := c.Param("subject")

	set, err := h.setService.Get(c.Request.Context(), branch, subject)
	if err != nil {
		h.failSet(c, err)
		return
	}

	response.Success(c, http.StatusOK, set)
}

// Save godoc
// PUT /api/v1/editor/sets/:branch/:subject
// Replaces the set's questions wholesale under the caller's authorship.
func (h *QuestionSetHandler) Save(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}
	branch := c.Param("branch")
	subject := c.Param("subject")

	var req model.SaveQuestionSetRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	set, err := h.setService.Save(c.Request.Context(), branch, subject, claims.UserID, req)
	if err != nil {
		h.failSet(c, err)
		return
	}

	response.Success(c, http.StatusOK, set)
}

// ListStartable godoc
// GET /api/v1/quiz/sets
// Lists branch/subject pairs with a non-empty question set.
func (h *QuestionSetHandler) ListStartable(c *gin.Context) {
	sets, err := h.setService.ListStartable(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sets": sets})
}

func (h *QuestionSetHandler) failSet(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownBranch), errors.Is(err, service.ErrUnknownSubject):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
	case errors.Is(err, service.ErrSetNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
