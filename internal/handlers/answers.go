package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraq/backend/internal/models"
)

type AnswerHandler struct {
	qa QAService
}

func NewAnswerHandler(qa QAService) *AnswerHandler {
	return &AnswerHandler{qa: qa}
}

// GetAnswers returns the answers of a question, highest voted first
func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	answers, err := h.qa.ListAnswers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, answers)
}

// CreateAnswer posts an answer to an existing question
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var input models.CreateAnswerRequest
	if !bindJSON(c, &input) {
		return
	}

	answer, err := h.qa.CreateAnswer(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, answer)
}
