package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mentoraq/backend/internal/models"
	"github.com/mentoraq/backend/internal/store"
)

// QAStore is the part of the document store the Q&A service needs.
type QAStore interface {
	store.QuestionStore
	store.AnswerStore
	store.ParentStore
}

type QAService struct {
	store QAStore
	now   func() time.Time
}

func NewQAService(st QAStore, opts ...Option) *QAService {
	o := buildOptions(opts)
	return &QAService{store: st, now: o.now}
}

// ListQuestions returns all questions newest first, each with its answer count.
func (s *QAService) ListQuestions(ctx context.Context) ([]models.QuestionSummary, error) {
	questions, err := s.store.FindQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	counts, err := s.store.CountAnswers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	out := make([]models.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		q.Normalize()
		out = append(out, models.QuestionSummary{Question: q, AnswersCount: counts[q.ID]})
	}
	return out, nil
}

func (s *QAService) CreateQuestion(ctx context.Context, req models.CreateQuestionRequest) (models.Question, error) {
	if err := models.ValidateTitle(req.Title); err != nil {
		return models.Question{}, invalid(err)
	}

	q := models.NewQuestion(req.Title, req.Description, req.Tags, req.Author, s.now())
	if err := s.store.InsertQuestion(ctx, &q); err != nil {
		return models.Question{}, fmt.Errorf("create question: %w", err)
	}

	log.Debug().Str("question_id", q.ID).Msg("question created")
	return q, nil
}

// GetQuestion tolerates stored questions that predate the votes and comments fields.
func (s *QAService) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	q, err := s.store.FindQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Question{}, notFound("question not found")
		}
		return models.Question{}, fmt.Errorf("get question: %w", err)
	}
	q.Normalize()
	return q, nil
}

// ListAnswers does not check that the question exists.
func (s *QAService) ListAnswers(ctx context.Context, questionID string) ([]models.Answer, error) {
	answers, err := s.store.FindAnswers(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	if answers == nil {
		answers = []models.Answer{}
	}
	for i := range answers {
		answers[i].Normalize()
	}
	return answers, nil
}

func (s *QAService) CreateAnswer(ctx context.Context, questionID string, req models.CreateAnswerRequest) (models.Answer, error) {
	if _, err := s.GetQuestion(ctx, questionID); err != nil {
		return models.Answer{}, err
	}

	a := models.NewAnswer(questionID, req.Content, req.Author, s.now())
	if err := s.store.InsertAnswer(ctx, &a); err != nil {
		return models.Answer{}, fmt.Errorf("create answer: %w", err)
	}

	log.Debug().Str("question_id", questionID).Str("answer_id", a.ID).Msg("answer created")
	return a, nil
}

// AddComment appends a new comment to the parent's embedded comments.
func (s *QAService) AddComment(ctx context.Context, kind models.ParentKind, parentID, text string) (models.Comment, error) {
	if !kind.Valid() {
		return models.Comment{}, invalid(fmt.Errorf("%w: %q", models.ErrUnknownKind, kind))
	}
	if err := models.ValidateCommentText(text); err != nil {
		return models.Comment{}, invalid(err)
	}

	c := models.NewComment(text, s.now())
	if err := s.store.PushComment(ctx, kind, parentID, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Comment{}, notFound("%s not found", kind)
		}
		return models.Comment{}, fmt.Errorf("add comment: %w", err)
	}

	log.Debug().Str("kind", string(kind)).Str("parent_id", parentID).Str("comment_id", c.ID).Msg("comment added")
	return c, nil
}

// Vote adds direction to the parent's votes and returns the new total. Votes
// are not clamped and voters are not tracked.
func (s *QAService) Vote(ctx context.Context, kind models.ParentKind, parentID string, direction int) (int, error) {
	if !kind.Valid() {
		return 0, invalid(fmt.Errorf("%w: %q", models.ErrUnknownKind, kind))
	}
	if err := models.ValidateDirection(direction); err != nil {
		return 0, invalid(err)
	}

	votes, err := s.store.IncrementVotes(ctx, kind, parentID, direction)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, notFound("%s not found", kind)
		}
		return 0, fmt.Errorf("vote: %w", err)
	}

	log.Debug().Str("kind", string(kind)).Str("parent_id", parentID).Int("votes", votes).Msg("vote applied")
	return votes, nil
}
