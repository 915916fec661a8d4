package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/mentoraq/backend/internal/config"
	"github.com/mentoraq/backend/internal/database"
	"github.com/mentoraq/backend/internal/models"
	"github.com/mentoraq/backend/internal/store"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("qa_platform"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.OpenDSN(dsn, config.DatabaseConfig{
		Name:            "qa_platform",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	s := New(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insert := func(t *testing.T, title string, at time.Time) models.Question {
		t.Helper()
		q := models.NewQuestion(title, "d", []string{"go"}, "", at)
		require.NoError(t, s.InsertQuestion(ctx, &q))
		require.NotEmpty(t, q.ID)
		return q
	}

	t.Run("questions round trip newest first", func(t *testing.T) {
		require.NoError(t, s.Reset(ctx))

		first := insert(t, "first", base)
		insert(t, "second", base.Add(time.Minute))

		got, err := s.FindQuestion(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", got.Title)
		assert.Equal(t, []string{"go"}, []string(got.Tags))
		assert.Equal(t, models.DefaultAuthor, got.Author)
		assert.Empty(t, got.Comments)
		assert.True(t, got.CreatedAt.Equal(base))

		all, err := s.FindQuestions(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "second", all[0].Title)
	})

	t.Run("unknown and malformed ids are not found", func(t *testing.T) {
		_, err := s.FindQuestion(ctx, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.FindQuestion(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.IncrementVotes(ctx, models.KindAnswer, "not-a-uuid", 1)
		assert.ErrorIs(t, err, store.ErrNotFound)

		err = s.PushComment(ctx, models.KindQuestion, uuid.NewString(), models.NewComment("x", base))
		assert.ErrorIs(t, err, store.ErrNotFound)

		answers, err := s.FindAnswers(ctx, "not-a-uuid")
		require.NoError(t, err)
		assert.Empty(t, answers)
	})

	t.Run("answers ordered and counted", func(t *testing.T) {
		require.NoError(t, s.Reset(ctx))
		q := insert(t, "q", base)
		empty := insert(t, "empty", base)

		for i, votes := range []int{2, 7, 2} {
			a := models.NewAnswer(q.ID, "a", "", base.Add(time.Duration(i)*time.Second))
			a.Votes = votes
			require.NoError(t, s.InsertAnswer(ctx, &a))
		}

		got, err := s.FindAnswers(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 7, got[0].Votes)
		assert.True(t, got[1].CreatedAt.Before(got[2].CreatedAt))

		counts, err := s.CountAnswers(ctx, []string{q.ID, empty.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts[q.ID])
		assert.Zero(t, counts[empty.ID])
	})

	t.Run("comments append in order", func(t *testing.T) {
		require.NoError(t, s.Reset(ctx))
		q := insert(t, "q", base)

		for _, text := range []string{"one", "two", "three"} {
			require.NoError(t, s.PushComment(ctx, models.KindQuestion, q.ID, models.NewComment(text, base)))
		}

		got, err := s.FindQuestion(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 3)
		assert.Equal(t, "one", got.Comments[0].Text)
		assert.Equal(t, "three", got.Comments[2].Text)
	})

	t.Run("concurrent votes are not lost", func(t *testing.T) {
		require.NoError(t, s.Reset(ctx))
		q := insert(t, "q", base)
		a := models.NewAnswer(q.ID, "a", "", base)
		require.NoError(t, s.InsertAnswer(ctx, &a))

		const n = 25
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.IncrementVotes(ctx, models.KindAnswer, a.ID, 1)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		votes, err := s.IncrementVotes(ctx, models.KindAnswer, a.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, n, votes)

		votes, err = s.IncrementVotes(ctx, models.KindAnswer, a.ID, -1)
		require.NoError(t, err)
		assert.Equal(t, n-1, votes)
	})

	t.Run("upsert keeps counters and created_at", func(t *testing.T) {
		p := models.UserProfile{Email: "sync@example.com", Name: "Sync", CreatedAt: base, LastLogin: base}
		require.NoError(t, s.UpsertUser(ctx, &p))
		require.NotZero(t, p.ID)

		require.NoError(t, s.DB().Model(&models.UserProfile{}).
			Where("email = ?", p.Email).
			Update("badges_count", 3).Error)

		later := base.Add(24 * time.Hour)
		again := models.UserProfile{Email: p.Email, Name: "Renamed", CreatedAt: later, LastLogin: later}
		require.NoError(t, s.UpsertUser(ctx, &again))

		got, err := s.FindUser(ctx, p.Email)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, 3, got.BadgesCount)
		assert.True(t, got.CreatedAt.Equal(base))
		assert.True(t, got.LastLogin.Equal(later))
	})

	t.Run("reset keeps users", func(t *testing.T) {
		insert(t, "q", base)
		require.NoError(t, s.Reset(ctx))

		qs, err := s.FindQuestions(ctx)
		require.NoError(t, err)
		assert.Empty(t, qs)

		_, err = s.FindUser(ctx, "sync@example.com")
		assert.NoError(t, err)
	})

	t.Run("health", func(t *testing.T) {
		stats := s.Health(ctx)
		assert.Equal(t, "up", stats["status"])
		assert.Equal(t, "postgres", stats["driver"])
	})
}
