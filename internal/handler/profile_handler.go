package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/middleware"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/response"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/service"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/validator"
)

// ProfileHandler handles the profile, avatar, and history endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me godoc
// GET /api/v1/profile
// Returns the caller's profile with achievements and avatar unlocks.
func (h *ProfileHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Update godoc
// PUT /api/v1/profile
// Applies profile edits; locked avatars are rejected.
func (h *ProfileHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAvatarLocked):
			response.Fail(c, http.StatusForbidden, response.ErrAvatarLocked)
		case errors.Is(err, service.ErrUnknownAvatar), errors.Is(err, service.ErrUnknownBranch):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// History godoc
// GET /api/v1/profile/attempts?limit=20
// Returns the caller's most recent attempts.
func (h *ProfileHandler) History(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	attempts, err := h.profileService.History(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if attempts == nil {
		attempts = []model.Attempt{}
	}

	response.Success(c, http.StatusOK, gin.H{"attempts": attempts})
}

// Activity godoc
// GET /api/v1/profile/activity?limit=20
// Returns the caller's most recent activity log entries.
func (h *ProfileHandler) Activity(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.profileService.Activity(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if entries == nil {
		entries = []model.ActivityEntry{}
	}

	response.Success(c, http.StatusOK, gin.H{"activity": entries})
}
