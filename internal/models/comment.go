package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is embedded in the comments array of a Question or Answer.
type Comment struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment builds a comment with a fresh identifier.
func NewComment(text string, now time.Time) Comment {
	return Comment{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		CreatedAt: now.UTC(),
	}
}

// Comments is stored as a jsonb array on the parent row.
type Comments []Comment

func (Comments) GormDataType() string {
	return "jsonb"
}

// Value never yields NULL so appends against the column always see an array.
func (c Comments) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]Comment(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *Comments) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = Comments{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("comments: unsupported scan type %T", src)
	}

	var out []Comment
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("comments: %w", err)
	}
	if out == nil {
		out = []Comment{}
	}
	*c = out
	return nil
}

var ErrTextRequired = errors.New("comment text is required")

// ValidateCommentText rejects empty or whitespace-only comment text.
func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}
	return nil
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
