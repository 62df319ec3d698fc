package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
)

// Quiz session errors.
var (
	ErrNoActiveSession = errors.New("no active quiz session")
	ErrNotCompleted    = errors.New("quiz session not yet completed")
)

// actorIdentity adapts a resolved user ID to the session's identity
// contract.
type actorIdentity struct {
	id string
}

func (a actorIdentity) ActorID() string { return a.id }

// QuestionView is a question as shown to the quiz taker. The correct
// index never leaves the server before completion.
type QuestionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// SessionState is the live view of an in-progress session.
type SessionState struct {
	BankID         quiz.BankID  `json:"bank_id"`
	QuestionIndex  int          `json:"question_index"`
	TotalQuestions int          `json:"total_questions"`
	Question       QuestionView `json:"question"`
	Selected       int          `json:"selected"`
	Answers        []int        `json:"answers"`
	Completed      bool         `json:"completed"`
}

// ResultsView is the post-completion summary with per-question review.
type ResultsView struct {
	BankID         quiz.BankID           `json:"bank_id"`
	Score          int                   `json:"score"`
	TotalQuestions int                   `json:"total_questions"`
	Percent        int                   `json:"percent"`
	Review         []quiz.QuestionResult `json:"review"`
}

// QuizService keeps one active quiz session per user. The mutex guards
// the registry map only; each session is driven by its owner's requests
// and is never shared.
type QuizService struct {
	deps     quiz.Deps
	mu       sync.Mutex
	sessions map[uuid.UUID]*quiz.Session
	log      zerolog.Logger
}

// NewQuizService creates a QuizService over the given collaborators.
// Identity is set per call, so deps.Identity is left nil here.
func NewQuizService(banks quiz.BankProvider, activity quiz.ActivitySink, attempts quiz.AttemptStore, log zerolog.Logger) *QuizService {
	return &QuizService{
		deps: quiz.Deps{
			Banks:    banks,
			Activity: activity,
			Attempts: attempts,
		},
		sessions: make(map[uuid.UUID]*quiz.Session),
		log:      log.With().Str("component", "quiz_service").Logger(),
	}
}

// Start begins a fresh session on the bank, replacing any session the
// user already had.
func (s *QuizService) Start(ctx context.Context, userID uuid.UUID, bankID quiz.BankID) (*SessionState, error) {
	deps := s.deps
	deps.Identity = actorIdentity{id: userID.String()}

	session, err := quiz.Start(ctx, deps, bankID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	s.log.Debug().Str("user_id", userID.String()).Str("bank_id", string(bankID)).Msg("session started")
	return stateOf(session), nil
}

// Answer records an option choice on the current question.
func (s *QuizService) Answer(userID uuid.UUID, optionIndex int) (*SessionState, error) {
	session, err := s.active(userID)
	if err != nil {
		return nil, err
	}
	if err := session.SelectOption(optionIndex); err != nil {
		return nil, err
	}
	return stateOf(session), nil
}

// Next advances the session, finalizing it on the last question.
func (s *QuizService) Next(userID uuid.UUID) (*SessionState, error) {
	session, err := s.active(userID)
	if err != nil {
		return nil, err
	}
	session.Next()
	return stateOf(session), nil
}

// Previous moves back one question.
func (s *QuizService) Previous(userID uuid.UUID) (*SessionState, error) {
	session, err := s.active(userID)
	if err != nil {
		return nil, err
	}
	session.Previous()
	return stateOf(session), nil
}

// State returns the current session view.
func (s *QuizService) State(userID uuid.UUID) (*SessionState, error) {
	session, err := s.active(userID)
	if err != nil {
		return nil, err
	}
	return stateOf(session), nil
}

// Results returns the completed session's review.
func (s *QuizService) Results(userID uuid.UUID) (*ResultsView, error) {
	session, err := s.active(userID)
	if err != nil {
		return nil, err
	}
	if !session.Completed() {
		return nil, ErrNotCompleted
	}

	score := session.Score()
	total := session.Len()
	return &ResultsView{
		BankID:         session.BankID(),
		Score:          score,
		TotalQuestions: total,
		Percent:        score * 100 / total,
		Review:         session.Results(),
	}, nil
}

// Retry replaces the session with a fresh attempt on the same bank.
func (s *QuizService) Retry(ctx context.Context, userID uuid.UUID) (*SessionState, error) {
	session, err := s.active(userID)
	if err != nil {
		return nil, err
	}

	fresh, err := session.Retry(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[userID] = fresh
	s.mu.Unlock()

	return stateOf(fresh), nil
}

// Quit discards the user's session. Nothing is recorded; an abandoned
// attempt leaves no trace.
func (s *QuizService) Quit(userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[userID]; !ok {
		return ErrNoActiveSession
	}
	delete(s.sessions, userID)
	return nil
}

func (s *QuizService) active(userID uuid.UUID) (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

func stateOf(session *quiz.Session) *SessionState {
	q := session.CurrentQuestion()
	return &SessionState{
		BankID:         session.BankID(),
		QuestionIndex:  session.CurrentIndex(),
		TotalQuestions: session.Len(),
		Question:       QuestionView{Prompt: q.Prompt, Options: q.Options[:]},
		Selected:       session.SelectedAnswer(),
		Answers:        session.Answers(),
		Completed:      session.Completed(),
	}
}
