package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mentoraq/backend/internal/config"
	"github.com/mentoraq/backend/internal/handlers"
	"github.com/mentoraq/backend/internal/middleware"
)

type Server struct {
	cfg     *config.Config
	handler *handlers.Handler
}

func New(cfg *config.Config, handler *handlers.Handler) *Server {
	return &Server{cfg: cfg, handler: handler}
}

// HTTPServer wraps the routes in an http.Server bound to the configured port.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:           "0.0.0.0:" + s.cfg.App.Port,
		Handler:        s.RegisterRoutes(),
		IdleTimeout:    time.Minute,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery(), middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := s.handler

	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)

	// Questions
	r.GET("/questions", h.Question.GetQuestions)
	r.POST("/questions", h.Question.CreateQuestion)
	r.GET("/questions/:id", h.Question.GetQuestion)

	// Answers
	r.GET("/questions/:id/answers", h.Answer.GetAnswers)
	r.POST("/questions/:id/answers", h.Answer.CreateAnswer)

	// Comments
	r.POST("/questions/:id/comments", h.Comment.AddQuestionComment)
	r.POST("/answers/:id/comments", h.Comment.AddAnswerComment)

	// Votes
	r.POST("/vote/question/:id", h.Vote.VoteQuestion)
	r.POST("/vote/answer/:id", h.Vote.VoteAnswer)

	// User profile sync
	r.POST("/sync-user", h.User.SyncUser)
	r.GET("/user-stats", h.User.GetUserStats)

	return r
}
