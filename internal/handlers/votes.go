package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraq/backend/internal/models"
)

type VoteHandler struct {
	qa QAService
}

func NewVoteHandler(qa QAService) *VoteHandler {
	return &VoteHandler{qa: qa}
}

// VoteQuestion upvotes or downvotes a question
func (h *VoteHandler) VoteQuestion(c *gin.Context) {
	h.vote(c, models.KindQuestion)
}

// VoteAnswer upvotes or downvotes an answer
func (h *VoteHandler) VoteAnswer(c *gin.Context) {
	h.vote(c, models.KindAnswer)
}

func (h *VoteHandler) vote(c *gin.Context, kind models.ParentKind) {
	var input models.Vote
	if !bindJSON(c, &input) {
		return
	}

	id := c.Param("id")
	votes, err := h.qa.Vote(c.Request.Context(), kind, id, input.Direction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.VoteResult{ID: id, Votes: votes})
}
