package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
)

// QuestionSetRepository handles teacher-authored question set storage.
type QuestionSetRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionSetRepository creates a new QuestionSetRepository.
func NewQuestionSetRepository(pool *pgxpool.Pool) *QuestionSetRepository {
	return &QuestionSetRepository{pool: pool}
}

// GetBySubject retrieves the set for a branch/subject pair including
// its questions in order. Returns pgx.ErrNoRows if no set exists.
func (r *QuestionSetRepository) GetBySubject(ctx context.Context, branch, subject string) (*model.QuestionSet, error) {
	set := &model.QuestionSet{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, branch, subject, author_id, updated_at
		 FROM question_sets
		 WHERE branch = $1 AND subject = $2`, branch, subject,
	).Scan(&set.ID, &set.Branch, &set.Subject, &set.AuthorID, &set.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT prompt, options, correct_index, order_num
		 FROM set_questions
		 WHERE set_id = $1
		 ORDER BY order_num ASC`, set.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var q model.SetQuestion
		if err := rows.Scan(&q.Prompt, &q.Options, &q.CorrectIndex, &q.OrderNum); err != nil {
			return nil, err
		}
		set.Questions = append(set.Questions, q)
	}
	return set, rows.Err()
}

// Replace upserts the set row and swaps its questions wholesale inside
// a transaction, mirroring the editor's save-all semantics.
func (r *QuestionSetRepository) Replace(ctx context.Context, branch, subject string, authorID uuid.UUID, questions []model.SetQuestion) (*model.QuestionSet, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	set := &model.QuestionSet{Branch: branch, Subject: subject, AuthorID: authorID}
	err = tx.QueryRow(ctx,
		`INSERT INTO question_sets (branch, subject, author_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (branch, subject)
		 DO UPDATE SET author_id = EXCLUDED.author_id, updated_at = NOW()
		 RETURNING id, updated_at`,
		branch, subject, authorID,
	).Scan(&set.ID, &set.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert set: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM set_questions WHERE set_id = $1`, set.ID); err != nil {
		return nil, fmt.Errorf("clear questions: %w", err)
	}

	for i, q := range questions {
		q.OrderNum = i
		if _, err := tx.Exec(ctx,
			`INSERT INTO set_questions (set_id, prompt, options, correct_index, order_num)
			 VALUES ($1, $2, $3, $4, $5)`,
			set.ID, q.Prompt, q.Options, q.CorrectIndex, q.OrderNum); err != nil {
			return nil, fmt.Errorf("insert question %d: %w", i, err)
		}
		set.Questions = append(set.Questions, q)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return set, nil
}

// SetSummary describes one startable set for listings.
type SetSummary struct {
	Branch        string `json:"branch"`
	Subject       string `json:"subject"`
	QuestionCount int    `json:"question_count"`
}

// ListStartable returns branch/subject pairs that have at least one
// question, for the quiz selection screen.
func (r *QuestionSetRepository) ListStartable(ctx context.Context) ([]SetSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT qs.branch, qs.subject, COUNT(sq.id)
		 FROM question_sets qs
		 JOIN set_questions sq ON sq.set_id = qs.id
		 GROUP BY qs.branch, qs.subject
		 ORDER BY qs.branch ASC, qs.subject ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []SetSummary
	for rows.Next() {
		var s SetSummary
		if err := rows.Scan(&s.Branch, &s.Subject, &s.QuestionCount); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// CountByAuthor returns how many sets a teacher has authored.
func (r *QuestionSetRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM question_sets WHERE author_id = $1`, authorID,
	).Scan(&count)
	return count, err
}
