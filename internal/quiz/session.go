package quiz

import (
	"context"
	"fmt"
	"time"
)

// Deps are the external collaborators a session needs. All four are
// injected so the session never reaches into ambient state.
type Deps struct {
	Banks    BankProvider
	Activity ActivitySink
	Attempts AttemptStore
	Identity IdentityContext
}

// Session walks one user through a single quiz attempt: one question at
// a time, answers recorded by option index, score computed at the end.
// A session is owned by exactly one caller and is not safe for
// concurrent use; that is by contract, not a missing lock.
type Session struct {
	deps      Deps
	actorID   string
	bankID    BankID
	questions []Question
	answers   []int
	current   int
	completed bool
}

// Start loads the bank snapshot and begins a fresh attempt at question
// zero with every answer unrecorded. It emits a best-effort "started"
// activity event; sink failures never block or fail the start.
// Returns ErrUnknownBank (possibly wrapped) if the bank cannot be
// resolved or is empty.
func Start(ctx context.Context, deps Deps, bankID BankID) (*Session, error) {
	questions, err := deps.Banks.LoadBank(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("load bank %q: %w", bankID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("bank %q has no questions: %w", bankID, ErrUnknownBank)
	}

	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}

	s := &Session{
		deps:      deps,
		actorID:   deps.Identity.ActorID(),
		bankID:    bankID,
		questions: questions,
		answers:   answers,
	}

	s.deps.Activity.Record(ActivityEvent{
		ActorID:    s.actorID,
		Action:     fmt.Sprintf("Started quiz: %s", bankID),
		OccurredAt: time.Now(),
	})

	return s, nil
}

// SelectOption records optionIndex as the answer for the current
// question, overwriting any prior choice. It does not advance the
// cursor. Returns ErrInvalidOption for an out-of-range index and
// ErrCompleted once the session has finished.
func (s *Session) SelectOption(optionIndex int) error {
	if s.completed {
		return ErrCompleted
	}
	if optionIndex < 0 || optionIndex >= OptionCount {
		return ErrInvalidOption
	}
	s.answers[s.current] = optionIndex
	return nil
}

// Next advances to the following question. On the last question it
// finalizes instead: the session becomes completed, the score is fixed,
// and the attempt record plus a "completed" activity event are emitted
// exactly once. Unanswered questions count as wrong. Calling Next on a
// completed session is a no-op.
func (s *Session) Next() {
	if s.completed {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
		return
	}
	s.finalize()
}

// Previous moves back one question. No-op at the first question and
// after completion. Moving back never clears a recorded answer.
func (s *Session) Previous() {
	if s.completed || s.current == 0 {
		return
	}
	s.current--
}

// Retry begins a fresh attempt on the same bank. The new session shares
// no mutable state with this one.
func (s *Session) Retry(ctx context.Context) (*Session, error) {
	return Start(ctx, s.deps, s.bankID)
}

// Score counts the currently correct positions. Valid at any time; it
// backs both live progress and the final results view.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.questions {
		if s.answers[i] == q.CorrectIndex {
			score++
		}
	}
	return score
}

// finalize runs once on the last-question Next.
func (s *Session) finalize() {
	s.completed = true
	score := s.Score()
	now := time.Now()

	s.deps.Attempts.SaveAttempt(AttemptRecord{
		UserID:         s.actorID,
		BankID:         s.bankID,
		Score:          score,
		TotalQuestions: len(s.questions),
		CompletedAt:    now,
	})
	s.deps.Activity.Record(ActivityEvent{
		ActorID:    s.actorID,
		Action:     fmt.Sprintf("Completed quiz: %s (score %d/%d)", s.bankID, score, len(s.questions)),
		OccurredAt: now,
	})
}

// BankID returns the active bank identifier.
func (s *Session) BankID() BankID { return s.bankID }

// Completed reports whether the session reached submission.
func (s *Session) Completed() bool { return s.completed }

// CurrentIndex returns the zero-based cursor position.
func (s *Session) CurrentIndex() int { return s.current }

// Len returns the number of questions in the bank snapshot.
func (s *Session) Len() int { return len(s.questions) }

// CurrentQuestion returns the question under the cursor.
func (s *Session) CurrentQuestion() Question {
	return s.questions[s.current]
}

// SelectedAnswer returns the recorded choice for the current question,
// or Unanswered.
func (s *Session) SelectedAnswer() int {
	return s.answers[s.current]
}

// Answers returns a copy of the per-question answer slice.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// QuestionResult pairs a question with the user's recorded choice for
// the per-question review on the results view.
type QuestionResult struct {
	Question Question `json:"question"`
	Selected int      `json:"selected"`
	Correct  bool     `json:"correct"`
}

// Results returns the full per-question review.
func (s *Session) Results() []QuestionResult {
	out := make([]QuestionResult, len(s.questions))
	for i, q := range s.questions {
		out[i] = QuestionResult{
			Question: q,
			Selected: s.answers[i],
			Correct:  s.answers[i] == q.CorrectIndex,
		}
	}
	return out
}
