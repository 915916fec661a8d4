package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraq/backend/internal/models"
)

type QuestionHandler struct {
	qa QAService
}

func NewQuestionHandler(qa QAService) *QuestionHandler {
	return &QuestionHandler{qa: qa}
}

// GetQuestions returns every question, newest first, with answers_count
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.qa.ListQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateQuestion creates a new question
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input models.CreateQuestionRequest
	if !bindJSON(c, &input) {
		return
	}

	question, err := h.qa.CreateQuestion(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// GetQuestion returns a single question by ID
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.qa.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}
