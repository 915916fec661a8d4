package models

import (
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
)

const DefaultAuthor = "Anonymous"

var ErrTitleRequired = errors.New("title is required")

type Question struct {
	ID          string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null;default:''" json:"description"`
	Tags        pq.StringArray `gorm:"type:text[];index:idx_questions_tags,type:gin" json:"tags"`
	Author      string         `gorm:"not null;default:Anonymous" json:"author"`
	Votes       int            `gorm:"not null;default:0" json:"votes"`
	Comments    Comments       `gorm:"type:jsonb;not null;default:'[]'" json:"comments"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

// NewQuestion applies creation defaults: no votes, no comments, anonymous author.
func NewQuestion(title, description string, tags []string, author string, now time.Time) Question {
	q := Question{
		Title:       strings.TrimSpace(title),
		Description: description,
		Tags:        pq.StringArray(tags),
		Author:      author,
		Votes:       0,
		Comments:    Comments{},
		CreatedAt:   now.UTC(),
	}
	q.Normalize()
	return q
}

// Normalize fills fields that legacy rows may lack.
func (q *Question) Normalize() {
	if q.Tags == nil {
		q.Tags = pq.StringArray{}
	}
	if q.Comments == nil {
		q.Comments = Comments{}
	}
	if strings.TrimSpace(q.Author) == "" {
		q.Author = DefaultAuthor
	}
}

// QuestionSummary is a question as listed, with its answer count.
type QuestionSummary struct {
	Question
	AnswersCount int64 `json:"answers_count"`
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	return nil
}

type CreateQuestionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
}
