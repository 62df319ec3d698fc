package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PlatformTotals aggregates platform-wide counters for the admin
// dashboard.
type PlatformTotals struct {
	Students     int `json:"students"`
	Teachers     int `json:"teachers"`
	Attempts     int `json:"attempts"`
	ActivityRows int `json:"activity_rows"`
	QuestionSets int `json:"question_sets"`
	SetQuestions int `json:"set_questions"`
}

// DashboardRepository aggregates cross-table counters.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// Totals runs the admin dashboard counters in one query.
func (r *DashboardRepository) Totals(ctx context.Context) (*PlatformTotals, error) {
	t := &PlatformTotals{}
	err := r.pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM users WHERE role = 'student'),
		   (SELECT COUNT(*) FROM users WHERE role = 'teacher'),
		   (SELECT COUNT(*) FROM attempts),
		   (SELECT COUNT(*) FROM activity_log),
		   (SELECT COUNT(*) FROM question_sets),
		   (SELECT COUNT(*) FROM set_questions)`,
	).Scan(&t.Students, &t.Teachers, &t.Attempts, &t.ActivityRows, &t.QuestionSets, &t.SetQuestions)
	if err != nil {
		return nil, err
	}
	return t, nil
}
