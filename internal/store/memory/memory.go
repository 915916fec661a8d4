// Package memory is an in-process store used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mentoraq/backend/internal/models"
	"github.com/mentoraq/backend/internal/store"
)

type Store struct {
	mu sync.RWMutex

	questions     map[string]*models.Question
	questionOrder []string
	answers       map[string]*models.Answer
	answerOrder   []string
	users         map[string]*models.UserProfile
	nextUserID    uint
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		questions: make(map[string]*models.Question),
		answers:   make(map[string]*models.Answer),
		users:     make(map[string]*models.UserProfile),
	}
}

func (s *Store) InsertQuestion(_ context.Context, q *models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if _, ok := s.questions[q.ID]; ok {
		return fmt.Errorf("insert question: duplicate id %s", q.ID)
	}
	stored := copyQuestion(*q)
	s.questions[q.ID] = &stored
	s.questionOrder = append(s.questionOrder, q.ID)
	return nil
}

func (s *Store) FindQuestion(_ context.Context, id string) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return models.Question{}, store.ErrNotFound
	}
	return copyQuestion(*q), nil
}

func (s *Store) FindQuestions(_ context.Context) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, 0, len(s.questionOrder))
	for i := len(s.questionOrder) - 1; i >= 0; i-- {
		out = append(out, copyQuestion(*s.questions[s.questionOrder[i]]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) InsertAnswer(_ context.Context, a *models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, ok := s.answers[a.ID]; ok {
		return fmt.Errorf("insert answer: duplicate id %s", a.ID)
	}
	stored := copyAnswer(*a)
	s.answers[a.ID] = &stored
	s.answerOrder = append(s.answerOrder, a.ID)
	return nil
}

func (s *Store) FindAnswers(_ context.Context, questionID string) ([]models.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Answer{}
	for _, id := range s.answerOrder {
		if a := s.answers[id]; a.QuestionID == questionID {
			out = append(out, copyAnswer(*a))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Votes > out[j].Votes
	})
	return out, nil
}

func (s *Store) CountAnswers(_ context.Context, questionIDs []string) (map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64, len(questionIDs))
	for _, a := range s.answers {
		if slices.Contains(questionIDs, a.QuestionID) {
			counts[a.QuestionID]++
		}
	}
	return counts, nil
}

func (s *Store) PushComment(_ context.Context, kind models.ParentKind, id string, c models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case models.KindQuestion:
		q, ok := s.questions[id]
		if !ok {
			return store.ErrNotFound
		}
		q.Comments = append(q.Comments, c)
	case models.KindAnswer:
		a, ok := s.answers[id]
		if !ok {
			return store.ErrNotFound
		}
		a.Comments = append(a.Comments, c)
	default:
		return fmt.Errorf("push comment: %w: %q", models.ErrUnknownKind, kind)
	}
	return nil
}

func (s *Store) IncrementVotes(_ context.Context, kind models.ParentKind, id string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case models.KindQuestion:
		q, ok := s.questions[id]
		if !ok {
			return 0, store.ErrNotFound
		}
		q.Votes += delta
		return q.Votes, nil
	case models.KindAnswer:
		a, ok := s.answers[id]
		if !ok {
			return 0, store.ErrNotFound
		}
		a.Votes += delta
		return a.Votes, nil
	default:
		return 0, fmt.Errorf("increment votes: %w: %q", models.ErrUnknownKind, kind)
	}
}

func (s *Store) UpsertUser(_ context.Context, p *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[p.Email]
	if !ok {
		s.nextUserID++
		stored := *p
		stored.ID = s.nextUserID
		s.users[p.Email] = &stored
		*p = stored
		return nil
	}

	existing.Email = p.Email
	existing.Name = p.Name
	existing.Image = p.Image
	existing.LastLogin = p.LastLogin
	*p = *existing
	return nil
}

func (s *Store) FindUser(_ context.Context, email string) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return models.UserProfile{}, store.ErrNotFound
	}
	return *u, nil
}

func (s *Store) Health(_ context.Context) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]string{
		"status":    "up",
		"message":   "It's healthy",
		"driver":    "memory",
		"questions": fmt.Sprintf("%d", len(s.questions)),
		"answers":   fmt.Sprintf("%d", len(s.answers)),
	}
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = make(map[string]*models.Question)
	s.questionOrder = nil
	s.answers = make(map[string]*models.Answer)
	s.answerOrder = nil
	return nil
}

func (s *Store) Close() error {
	return nil
}

func copyQuestion(q models.Question) models.Question {
	q.Tags = append(pq.StringArray{}, q.Tags...)
	q.Comments = append(models.Comments{}, q.Comments...)
	return q
}

func copyAnswer(a models.Answer) models.Answer {
	a.Comments = append(models.Comments{}, a.Comments...)
	return a
}
