// Package store defines the document store the services persist through.
//
// Every mutating method is a single atomic operation in the backing store:
// inserts assign the identifier, PushComment appends to the embedded comments
// array, IncrementVotes adds to the counter in place, and UpsertUser separates
// fields that are always set from fields set only on insert.
package store

import (
	"context"
	"errors"

	"github.com/mentoraq/backend/internal/models"
)

var ErrNotFound = errors.New("not found")

type QuestionStore interface {
	// InsertQuestion stores q and writes the assigned identifier back into it.
	InsertQuestion(ctx context.Context, q *models.Question) error
	FindQuestion(ctx context.Context, id string) (models.Question, error)
	// FindQuestions returns every question, newest first.
	FindQuestions(ctx context.Context) ([]models.Question, error)
}

type AnswerStore interface {
	InsertAnswer(ctx context.Context, a *models.Answer) error
	// FindAnswers returns the answers of a question, highest votes first and
	// insertion order among equal votes.
	FindAnswers(ctx context.Context, questionID string) ([]models.Answer, error)
	// CountAnswers maps each question id to its number of answers. Ids with
	// no answers may be absent from the result.
	CountAnswers(ctx context.Context, questionIDs []string) (map[string]int64, error)
}

// ParentStore mutates the documents that own votes and comments.
type ParentStore interface {
	PushComment(ctx context.Context, kind models.ParentKind, id string, c models.Comment) error
	// IncrementVotes adds delta to the votes counter and returns the new value.
	IncrementVotes(ctx context.Context, kind models.ParentKind, id string, delta int) (int, error)
}

type UserStore interface {
	// UpsertUser inserts p or, when the email exists, overwrites only email,
	// name, image and last login. p is replaced with the stored profile.
	UpsertUser(ctx context.Context, p *models.UserProfile) error
	FindUser(ctx context.Context, email string) (models.UserProfile, error)
}

type Store interface {
	QuestionStore
	AnswerStore
	ParentStore
	UserStore

	// Health returns a map of health status information.
	Health(ctx context.Context) map[string]string
	// Reset removes all questions and answers. Profiles are kept.
	Reset(ctx context.Context) error
	Close() error
}
