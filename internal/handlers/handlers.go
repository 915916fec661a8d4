package handlers

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mentoraq/backend/internal/models"
	"github.com/mentoraq/backend/internal/service"
)

// QAService is the Q&A use-case surface the handlers call into.
type QAService interface {
	ListQuestions(ctx context.Context) ([]models.QuestionSummary, error)
	CreateQuestion(ctx context.Context, req models.CreateQuestionRequest) (models.Question, error)
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	ListAnswers(ctx context.Context, questionID string) ([]models.Answer, error)
	CreateAnswer(ctx context.Context, questionID string, req models.CreateAnswerRequest) (models.Answer, error)
	AddComment(ctx context.Context, kind models.ParentKind, parentID, text string) (models.Comment, error)
	Vote(ctx context.Context, kind models.ParentKind, parentID string, direction int) (int, error)
}

type UserService interface {
	SyncUser(ctx context.Context, req models.SyncUserRequest) (models.UserProfile, error)
	GetUserStats(ctx context.Context, email string) (models.UserStats, error)
}

// HealthChecker reports store health as a flat status map.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

// Handler combines all handler types
type Handler struct {
	Question *QuestionHandler
	Answer   *AnswerHandler
	Comment  *CommentHandler
	Vote     *VoteHandler
	User     *UserHandler
	Health   *HealthHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(qa QAService, users UserService, health HealthChecker) *Handler {
	return &Handler{
		Question: NewQuestionHandler(qa),
		Answer:   NewAnswerHandler(qa),
		Comment:  NewCommentHandler(qa),
		Vote:     NewVoteHandler(qa),
		User:     NewUserHandler(users),
		Health:   NewHealthHandler(health),
	}
}

// validatable is implemented by every request body.
type validatable interface {
	Validate() error
}

// bindJSON decodes the body into dst and runs its validation rules. On failure
// it writes a 400 and returns false.
func bindJSON(c *gin.Context, dst validatable) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	if err := dst.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// ToHTTPStatus converts a service error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.Is(err, service.ErrValidation), errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
