package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// BankID identifies a question bank. Built-in banks use fixed IDs;
// teacher-authored sets use the "set:<branch>:<subject>" form.
type BankID string

// Built-in bank identifiers.
const (
	BankSimple    BankID = "simple"
	BankMedium    BankID = "medium"
	BankHard      BankID = "hard"
	BankEngEasy   BankID = "eng_easy"
	BankEngMedium BankID = "eng_medium"
	BankEngHard   BankID = "eng_hard"
)

// setBankPrefix marks bank IDs backed by teacher-authored question sets.
const setBankPrefix = "set:"

// Domain errors.
var (
	ErrUnknownBank   = errors.New("unknown question bank")
	ErrInvalidOption = errors.New("option index out of range")
	ErrCompleted     = errors.New("quiz session already completed")
)

// SetBankID builds the bank identifier for a teacher-authored question
// set belonging to a branch/subject pair.
func SetBankID(branch, subject string) BankID {
	return BankID(fmt.Sprintf("%s%s:%s", setBankPrefix, branch, subject))
}

// ParseSetBankID splits a set-backed bank ID into its branch and subject.
// ok is false for built-in bank IDs.
func ParseSetBankID(id BankID) (branch, subject string, ok bool) {
	raw, found := strings.CutPrefix(string(id), setBankPrefix)
	if !found {
		return "", "", false
	}
	branch, subject, found = strings.Cut(raw, ":")
	if !found || branch == "" || subject == "" {
		return "", "", false
	}
	return branch, subject, true
}

// BankProvider resolves a bank ID to its ordered question list.
// Implementations must be deterministic for a given ID within a process
// lifetime and must return ErrUnknownBank for unrecognized IDs.
type BankProvider interface {
	LoadBank(ctx context.Context, id BankID) ([]Question, error)
}

// ActivityEvent is a telemetry intent describing a user action.
type ActivityEvent struct {
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AttemptRecord is the terminal record of one completed quiz attempt.
type AttemptRecord struct {
	UserID         string    `json:"user_id"`
	BankID         BankID    `json:"bank_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// ActivitySink receives best-effort activity events. Implementations
// must never propagate failures to the caller; a dropped event is lost.
type ActivitySink interface {
	Record(event ActivityEvent)
}

// AttemptStore persists completed attempt records. Called exactly once
// per session, at the moment it completes. Fire-and-forget: failures
// are the store's concern, never the session's.
type AttemptStore interface {
	SaveAttempt(record AttemptRecord)
}

// IdentityContext supplies the acting user's ID, resolved once at
// session start.
type IdentityContext interface {
	ActorID() string
}
