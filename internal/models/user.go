package models

import (
	"errors"
	"strings"
	"time"
)

var ErrEmailRequired = errors.New("email is required")

// UserProfile is keyed by email. Counters and CreatedAt are written only when
// the profile is first inserted; later syncs refresh Name, Image and LastLogin.
type UserProfile struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Name               string    `json:"name"`
	Image              *string   `json:"image"`
	ContributionPoints int       `gorm:"not null;default:0" json:"contributionPoints"`
	NotesCount         int       `gorm:"not null;default:0" json:"notesCount"`
	BadgesCount        int       `gorm:"not null;default:0" json:"badgesCount"`
	CreatedAt          time.Time `json:"createdAt"`
	LastLogin          time.Time `json:"lastLogin"`
}

func (UserProfile) TableName() string {
	return "app_users"
}

// UserStats is the public projection of a profile's counters.
type UserStats struct {
	ContributionPoints int `json:"contributionPoints"`
	NotesCount         int `json:"notesCount"`
	BadgesCount        int `json:"badgesCount"`
}

func (u UserProfile) Stats() UserStats {
	return UserStats{
		ContributionPoints: u.ContributionPoints,
		NotesCount:         u.NotesCount,
		BadgesCount:        u.BadgesCount,
	}
}

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	return nil
}

type SyncUserRequest struct {
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}
