package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
)

type stubBanks struct {
	questions []quiz.Question
}

func (b stubBanks) LoadBank(_ context.Context, id quiz.BankID) ([]quiz.Question, error) {
	if id != "stub" {
		return nil, quiz.ErrUnknownBank
	}
	return b.questions, nil
}

type stubSink struct {
	mu     sync.Mutex
	events []quiz.ActivityEvent
}

func (s *stubSink) Record(event quiz.ActivityEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

type stubStore struct {
	mu      sync.Mutex
	records []quiz.AttemptRecord
}

func (s *stubStore) SaveAttempt(record quiz.AttemptRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

func stubQuestions(n int) []quiz.Question {
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			Prompt:       "q",
			Options:      [quiz.OptionCount]string{"a", "b", "c", "d"},
			CorrectIndex: i % quiz.OptionCount,
		}
	}
	return questions
}

func newTestQuizService(n int) (*QuizService, *stubSink, *stubStore) {
	sink := &stubSink{}
	store := &stubStore{}
	svc := NewQuizService(stubBanks{questions: stubQuestions(n)}, sink, store, zerolog.Nop())
	return svc, sink, store
}

func TestQuizServiceStartAndState(t *testing.T) {
	svc, _, _ := newTestQuizService(3)
	userID := uuid.New()

	state, err := svc.Start(context.Background(), userID, "stub")
	require.NoError(t, err)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.Equal(t, 3, state.TotalQuestions)
	assert.False(t, state.Completed)
	assert.Equal(t, quiz.Unanswered, state.Selected)
	assert.Len(t, state.Question.Options, quiz.OptionCount)

	got, err := svc.State(userID)
	require.NoError(t, err)
	assert.Equal(t, state.BankID, got.BankID)
}

func TestQuizServiceStartUnknownBank(t *testing.T) {
	svc, _, _ := newTestQuizService(3)

	_, err := svc.Start(context.Background(), uuid.New(), "nope")
	assert.ErrorIs(t, err, quiz.ErrUnknownBank)
}

func TestQuizServiceRequiresActiveSession(t *testing.T) {
	svc, _, _ := newTestQuizService(3)
	userID := uuid.New()

	_, err := svc.Answer(userID, 0)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = svc.Next(userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = svc.State(userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	assert.ErrorIs(t, svc.Quit(userID), ErrNoActiveSession)
}

func TestQuizServiceAnswerAndComplete(t *testing.T) {
	svc, _, store := newTestQuizService(2)
	userID := uuid.New()

	_, err := svc.Start(context.Background(), userID, "stub")
	require.NoError(t, err)

	// Answer both questions correctly (correct indexes are 0 and 1).
	_, err = svc.Answer(userID, 0)
	require.NoError(t, err)

	state, err := svc.Next(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, state.QuestionIndex)

	_, err = svc.Answer(userID, 1)
	require.NoError(t, err)

	state, err = svc.Next(userID)
	require.NoError(t, err)
	assert.True(t, state.Completed)

	results, err := svc.Results(userID)
	require.NoError(t, err)
	assert.Equal(t, 2, results.Score)
	assert.Equal(t, 100, results.Percent)
	assert.Len(t, results.Review, 2)

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.records, 1)
	assert.Equal(t, userID.String(), store.records[0].UserID)
}

func TestQuizServiceResultsBeforeCompletion(t *testing.T) {
	svc, _, _ := newTestQuizService(3)
	userID := uuid.New()

	_, err := svc.Start(context.Background(), userID, "stub")
	require.NoError(t, err)

	_, err = svc.Results(userID)
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestQuizServiceRetryResetsState(t *testing.T) {
	svc, _, _ := newTestQuizService(2)
	userID := uuid.New()

	_, err := svc.Start(context.Background(), userID, "stub")
	require.NoError(t, err)
	_, err = svc.Answer(userID, 0)
	require.NoError(t, err)

	state, err := svc.Retry(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.Equal(t, quiz.Unanswered, state.Selected)
	assert.False(t, state.Completed)
}

func TestQuizServiceQuitLeavesNoRecord(t *testing.T) {
	svc, _, store := newTestQuizService(2)
	userID := uuid.New()

	_, err := svc.Start(context.Background(), userID, "stub")
	require.NoError(t, err)
	require.NoError(t, svc.Quit(userID))

	_, err = svc.State(userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.records)
}

func TestQuizServiceSessionsAreIsolatedPerUser(t *testing.T) {
	svc, _, _ := newTestQuizService(3)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Start(context.Background(), alice, "stub")
	require.NoError(t, err)
	_, err = svc.Start(context.Background(), bob, "stub")
	require.NoError(t, err)

	_, err = svc.Next(alice)
	require.NoError(t, err)

	bobState, err := svc.State(bob)
	require.NoError(t, err)
	assert.Equal(t, 0, bobState.QuestionIndex)
}
