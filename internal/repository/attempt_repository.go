package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
)

// AttemptRepository handles attempt record data access.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

// BatchInsert writes a batch of attempt records in one round trip.
// Used by the persistence worker draining the Redis queue.
func (r *AttemptRepository) BatchInsert(ctx context.Context, attempts []model.Attempt) error {
	if len(attempts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range attempts {
		batch.Queue(
			`INSERT INTO attempts (user_id, bank_id, score, total_questions, completed_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			a.UserID, a.BankID, a.Score, a.TotalQuestions, a.CompletedAt)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

// ListByUser retrieves a user's most recent attempts.
func (r *AttemptRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Attempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, bank_id, score, total_questions, completed_at
		 FROM attempts
		 WHERE user_id = $1
		 ORDER BY completed_at DESC
		 LIMIT $2`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []model.Attempt
	for rows.Next() {
		var a model.Attempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.BankID, &a.Score, &a.TotalQuestions, &a.CompletedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// CountByUser returns the number of completed attempts for a user.
// Drives achievement unlocks.
func (r *AttemptRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attempts WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, err
}

// UserStats aggregates a user's attempt history for the dashboard.
type UserStats struct {
	AttemptCount int     `json:"attempt_count"`
	BestPercent  int     `json:"best_percent"`
	AvgPercent   float64 `json:"avg_percent"`
}

// StatsByUser computes attempt count, best and average percentage score.
func (r *AttemptRepository) StatsByUser(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	s := &UserStats{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(MAX(score * 100 / NULLIF(total_questions, 0)), 0),
		        COALESCE(AVG(score * 100.0 / NULLIF(total_questions, 0)), 0)
		 FROM attempts WHERE user_id = $1`, userID,
	).Scan(&s.AttemptCount, &s.BestPercent, &s.AvgPercent)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// BestScores returns each user's best percentage score joined with
// their profile, ranked descending. Backs the leaderboard.
func (r *AttemptRepository) BestScores(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.full_name, u.branch,
		        MAX(a.score * 100 / NULLIF(a.total_questions, 0)) AS best
		 FROM attempts a
		 JOIN users u ON a.user_id = u.id
		 GROUP BY u.id, u.full_name, u.branch
		 ORDER BY best DESC, u.full_name ASC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.FullName, &e.Branch, &e.Score); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
