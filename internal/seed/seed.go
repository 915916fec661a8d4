// Package seed loads a small demo data set into an empty store.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mentoraq/backend/internal/models"
	"github.com/mentoraq/backend/internal/store"
)

type question struct {
	title       string
	description string
	tags        []string
	votes       int
}

type answer struct {
	question int
	content  string
	votes    int
}

var questions = []question{
	{
		title:       "How to get started with React?",
		description: "I'm a beginner in web development. What's the best way to learn React? Are there any good tutorials or resources?",
		tags:        []string{"react", "javascript", "beginner"},
		votes:       5,
	},
	{
		title:       "What's the difference between async/await and promises?",
		description: "I understand promises but I'm confused about when to use async/await. Can someone explain the differences?",
		tags:        []string{"javascript", "async"},
		votes:       12,
	},
	{
		title:       "Best practices for document schema design",
		description: "I'm designing a schema for my e-commerce app. What are the best practices to follow?",
		tags:        []string{"database", "schema-design"},
		votes:       8,
	},
}

var answers = []answer{
	{0, "Start with the official React documentation at react.dev. Then practice by building small projects. The React tutorial is great for beginners!", 3},
	{0, "I recommend following along with an interactive React course. It's very beginner-friendly.", 2},
	{1, "async/await is syntactic sugar over promises that makes code look more like synchronous code. It's cleaner to read and write!", 8},
	{2, "Denormalize thoughtfully, but keep related data together. Embed 1-to-few relationships and use arrays for related items.", 5},
}

// Result reports what Run inserted.
type Result struct {
	QuestionIDs []string
	AnswerIDs   []string
}

// Run clears questions and answers and inserts the demo set. Questions are
// stamped one second apart so the listing order is stable. User profiles are
// left untouched.
func Run(ctx context.Context, st store.Store, now time.Time) (Result, error) {
	if err := st.Reset(ctx); err != nil {
		return Result{}, fmt.Errorf("seed: %w", err)
	}

	var res Result
	for i, sq := range questions {
		q := models.NewQuestion(sq.title, sq.description, sq.tags, models.DefaultAuthor, now.Add(time.Duration(i)*time.Second))
		q.Votes = sq.votes
		if err := st.InsertQuestion(ctx, &q); err != nil {
			return Result{}, fmt.Errorf("seed question %d: %w", i, err)
		}
		res.QuestionIDs = append(res.QuestionIDs, q.ID)
	}

	for i, sa := range answers {
		a := models.NewAnswer(res.QuestionIDs[sa.question], sa.content, models.DefaultAuthor, now.Add(time.Duration(i)*time.Second))
		a.Votes = sa.votes
		if err := st.InsertAnswer(ctx, &a); err != nil {
			return Result{}, fmt.Errorf("seed answer %d: %w", i, err)
		}
		res.AnswerIDs = append(res.AnswerIDs, a.ID)
	}

	log.Info().
		Int("questions", len(res.QuestionIDs)).
		Int("answers", len(res.AnswerIDs)).
		Msg("database seeded")
	return res, nil
}
