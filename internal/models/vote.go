package models

import (
	"errors"
	"fmt"
)

// ParentKind names the collection that owns votes and embedded comments.
type ParentKind string

const (
	KindQuestion ParentKind = "question"
	KindAnswer   ParentKind = "answer"
)

var (
	ErrInvalidDirection = errors.New("direction must be -1, 0 or 1")
	ErrUnknownKind      = errors.New("unknown parent kind")
)

func ParseParentKind(s string) (ParentKind, error) {
	switch k := ParentKind(s); k {
	case KindQuestion, KindAnswer:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k ParentKind) Valid() bool {
	return k == KindQuestion || k == KindAnswer
}

// Vote is never stored; it only carries a direction applied to a votes counter.
// 1 for upvote, -1 for downvote, 0 leaves the count unchanged.
type Vote struct {
	Direction int `json:"direction"`
}

func ValidateDirection(direction int) error {
	if direction < -1 || direction > 1 {
		return ErrInvalidDirection
	}
	return nil
}

type VoteResult struct {
	ID    string `json:"_id"`
	Votes int    `json:"votes"`
}
