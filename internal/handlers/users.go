package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraq/backend/internal/models"
)

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SyncUser records a login: creates the profile on first sight, refreshes
// name, image and lastLogin afterwards
func (h *UserHandler) SyncUser(c *gin.Context) {
	var input models.SyncUserRequest
	if !bindJSON(c, &input) {
		return
	}

	if _, err := h.users.SyncUser(c.Request.Context(), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUserStats returns a user's counters, zeros if the user never synced
func (h *UserHandler) GetUserStats(c *gin.Context) {
	stats, err := h.users.GetUserStats(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
