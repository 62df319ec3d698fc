package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/response"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/service"
)

// LeaderboardHandler serves the public ranking.
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Top godoc
// GET /api/v1/leaderboard
// Returns the top best-percentage scores, one row per user.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	entries, err := h.leaderboardService.Top(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}
