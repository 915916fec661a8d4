package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraq/backend/internal/models"
)

type CommentHandler struct {
	qa QAService
}

func NewCommentHandler(qa QAService) *CommentHandler {
	return &CommentHandler{qa: qa}
}

// AddQuestionComment appends a comment to a question
func (h *CommentHandler) AddQuestionComment(c *gin.Context) {
	h.addComment(c, models.KindQuestion)
}

// AddAnswerComment appends a comment to an answer
func (h *CommentHandler) AddAnswerComment(c *gin.Context) {
	h.addComment(c, models.KindAnswer)
}

func (h *CommentHandler) addComment(c *gin.Context, kind models.ParentKind) {
	var input models.CreateCommentRequest
	if !bindJSON(c, &input) {
		return
	}

	comment, err := h.qa.AddComment(c.Request.Context(), kind, c.Param("id"), input.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"comment": comment,
	})
}
