package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mentoraq/backend/internal/models"
	"github.com/mentoraq/backend/internal/store"
)

// UserService keeps login profiles in sync. notesCount and badgesCount are
// maintained elsewhere; this service only initializes and reads them.
type UserService struct {
	store store.UserStore
	now   func() time.Time
}

func NewUserService(st store.UserStore, opts ...Option) *UserService {
	o := buildOptions(opts)
	return &UserService{store: st, now: o.now}
}

// SyncUser upserts the profile for req.Email in one store call. Counters and
// createdAt are only written when the profile is new.
func (s *UserService) SyncUser(ctx context.Context, req models.SyncUserRequest) (models.UserProfile, error) {
	if err := models.ValidateEmail(req.Email); err != nil {
		return models.UserProfile{}, invalid(err)
	}

	now := s.now().UTC()
	p := models.UserProfile{
		Email:              strings.TrimSpace(req.Email),
		Name:               req.Name,
		Image:              req.Image,
		ContributionPoints: 0,
		NotesCount:         0,
		BadgesCount:        0,
		CreatedAt:          now,
		LastLogin:          now,
	}
	if err := s.store.UpsertUser(ctx, &p); err != nil {
		return models.UserProfile{}, fmt.Errorf("sync user: %w", err)
	}

	log.Info().
		Str("email", p.Email).
		Bool("created", p.CreatedAt.Equal(p.LastLogin)).
		Msg("user synced")
	return p, nil
}

// GetUserStats returns zero counters for an email that never synced.
func (s *UserService) GetUserStats(ctx context.Context, email string) (models.UserStats, error) {
	if err := models.ValidateEmail(email); err != nil {
		return models.UserStats{}, invalid(err)
	}

	u, err := s.store.FindUser(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.UserStats{}, nil
		}
		return models.UserStats{}, fmt.Errorf("user stats: %w", err)
	}
	return u.Stats(), nil
}
