package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt is one persisted run through a question bank by one user.
type Attempt struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	BankID         string    `json:"bank_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Percent returns the attempt score as a 0-100 percentage.
func (a Attempt) Percent() int {
	if a.TotalQuestions == 0 {
		return 0
	}
	return a.Score * 100 / a.TotalQuestions
}

// LeaderboardEntry is one ranked row: a user's best percentage score.
type LeaderboardEntry struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Branch   string    `json:"branch"`
	Score    int       `json:"score"`
}
