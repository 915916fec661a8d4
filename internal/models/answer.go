package models

import (
	"strings"
	"time"
)

type Answer struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	QuestionID string    `gorm:"type:uuid;not null;index" json:"question_id"`
	Content    string    `gorm:"not null;default:''" json:"content"`
	Author     string    `gorm:"not null;default:Anonymous" json:"author"`
	Votes      int       `gorm:"not null;default:0" json:"votes"`
	Comments   Comments  `gorm:"type:jsonb;not null;default:'[]'" json:"comments"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func NewAnswer(questionID, content, author string, now time.Time) Answer {
	a := Answer{
		QuestionID: questionID,
		Content:    content,
		Author:     author,
		Votes:      0,
		Comments:   Comments{},
		CreatedAt:  now.UTC(),
	}
	a.Normalize()
	return a
}

func (a *Answer) Normalize() {
	if a.Comments == nil {
		a.Comments = Comments{}
	}
	if strings.TrimSpace(a.Author) == "" {
		a.Author = DefaultAuthor
	}
}

type CreateAnswerRequest struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}
