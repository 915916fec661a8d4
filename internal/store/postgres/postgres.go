// Package postgres stores questions and answers as rows whose comments live in
// a jsonb array, which gives the document semantics the services rely on.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mentoraq/backend/internal/models"
	"github.com/mentoraq/backend/internal/store"
)

// invalid_text_representation: an id that is not a uuid cannot match a row.
const codeInvalidTextRepresentation = "22P02"

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) InsertQuestion(ctx context.Context, q *models.Question) error {
	if err := s.db.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (s *Store) FindQuestion(ctx context.Context, id string) (models.Question, error) {
	var q models.Question
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&q).Error; err != nil {
		return models.Question{}, classify("find question", err)
	}
	return q, nil
}

func (s *Store) FindQuestions(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	return questions, nil
}

func (s *Store) InsertAnswer(ctx context.Context, a *models.Answer) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (s *Store) FindAnswers(ctx context.Context, questionID string) ([]models.Answer, error) {
	answers := []models.Answer{}
	err := s.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("votes DESC").
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		if errors.Is(classify("", err), store.ErrNotFound) {
			return []models.Answer{}, nil
		}
		return nil, fmt.Errorf("find answers: %w", err)
	}
	return answers, nil
}

func (s *Store) CountAnswers(ctx context.Context, questionIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(questionIDs))
	if len(questionIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		QuestionID string
		Total      int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Answer{}).
		Select("question_id, COUNT(*) AS total").
		Where("question_id IN ?", questionIDs).
		Group("question_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count answers: %w", err)
	}

	for _, r := range rows {
		counts[r.QuestionID] = r.Total
	}
	return counts, nil
}

func (s *Store) PushComment(ctx context.Context, kind models.ParentKind, id string, c models.Comment) error {
	model, err := parentModel(kind)
	if err != nil {
		return err
	}

	payload, err := json.Marshal([]models.Comment{c})
	if err != nil {
		return fmt.Errorf("push comment: %w", err)
	}

	res := s.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		UpdateColumn("comments", gorm.Expr("COALESCE(comments, '[]'::jsonb) || ?::jsonb", string(payload)))
	if res.Error != nil {
		return classify("push comment", res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) IncrementVotes(ctx context.Context, kind models.ParentKind, id string, delta int) (int, error) {
	model, err := parentModel(kind)
	if err != nil {
		return 0, err
	}

	// RETURNING scans the new count back into model.
	res := s.db.WithContext(ctx).
		Model(model).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "votes"}}}).
		Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("COALESCE(votes, 0) + ?", delta))
	if res.Error != nil {
		return 0, classify("increment votes", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, store.ErrNotFound
	}

	switch m := model.(type) {
	case *models.Question:
		return m.Votes, nil
	case *models.Answer:
		return m.Votes, nil
	}
	return 0, fmt.Errorf("increment votes: unexpected model %T", model)
}

func (s *Store) UpsertUser(ctx context.Context, p *models.UserProfile) error {
	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.AssignmentColumns([]string{"email", "name", "image", "last_login"}),
			},
			clause.Returning{},
		).
		Create(p).Error
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (s *Store) FindUser(ctx context.Context, email string) (models.UserProfile, error) {
	var u models.UserProfile
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error; err != nil {
		return models.UserProfile{}, classify("find user", err)
	}
	return u, nil
}

// Health checks the health of the database connection by pinging the database.
func (s *Store) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats := map[string]string{"driver": "postgres"}

	sqlDB, err := s.db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db error: %v", err)
		return stats
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := sqlDB.Stats()
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)

	return stats
}

func (s *Store) Reset(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Question{}).Error
	})
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parentModel(kind models.ParentKind) (any, error) {
	switch kind {
	case models.KindQuestion:
		return &models.Question{}, nil
	case models.KindAnswer:
		return &models.Answer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
}

func classify(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeInvalidTextRepresentation {
		return store.ErrNotFound
	}
	if op == "" {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
