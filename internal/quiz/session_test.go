package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBanks struct {
	banks map[BankID][]Question
}

func (f *fakeBanks) LoadBank(_ context.Context, id BankID) ([]Question, error) {
	qs, ok := f.banks[id]
	if !ok {
		return nil, ErrUnknownBank
	}
	return qs, nil
}

type fakeSink struct {
	events []ActivityEvent
}

func (f *fakeSink) Record(e ActivityEvent) { f.events = append(f.events, e) }

type fakeStore struct {
	records []AttemptRecord
}

func (f *fakeStore) SaveAttempt(r AttemptRecord) { f.records = append(f.records, r) }

type fakeIdentity struct{ id string }

func (f fakeIdentity) ActorID() string { return f.id }

func tenQuestions() []Question {
	qs := make([]Question, 10)
	for i := range qs {
		qs[i] = Question{
			Prompt:       "question",
			Options:      [OptionCount]string{"a", "b", "c", "d"},
			CorrectIndex: i % OptionCount,
		}
	}
	return qs
}

func newTestDeps(t *testing.T) (Deps, *fakeSink, *fakeStore) {
	t.Helper()
	sink := &fakeSink{}
	store := &fakeStore{}
	deps := Deps{
		Banks:    &fakeBanks{banks: map[BankID][]Question{BankSimple: tenQuestions()}},
		Activity: sink,
		Attempts: store,
		Identity: fakeIdentity{id: "user-1"},
	}
	return deps, sink, store
}

func TestStartInitializesSession(t *testing.T) {
	deps, sink, _ := newTestDeps(t)

	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.Completed())
	assert.Equal(t, 10, s.Len())
	require.Len(t, s.Answers(), 10)
	for _, a := range s.Answers() {
		assert.Equal(t, Unanswered, a)
	}

	require.Len(t, sink.events, 1)
	assert.Equal(t, "user-1", sink.events[0].ActorID)
	assert.Equal(t, "Started quiz: simple", sink.events[0].Action)
}

func TestStartUnknownBank(t *testing.T) {
	deps, sink, _ := newTestDeps(t)

	s, err := Start(context.Background(), deps, BankID("unknown-bank"))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownBank)
	assert.Empty(t, sink.events, "no event for a session that never started")
}

func TestStartEmptyBank(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	deps.Banks = &fakeBanks{banks: map[BankID][]Question{BankSimple: {}}}

	_, err := Start(context.Background(), deps, BankSimple)
	assert.ErrorIs(t, err, ErrUnknownBank)
}

func TestSelectOptionOverwrites(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	require.NoError(t, s.SelectOption(2))
	assert.Equal(t, 2, s.SelectedAnswer())

	// Re-selecting overwrites, it does not accumulate.
	require.NoError(t, s.SelectOption(0))
	assert.Equal(t, 0, s.SelectedAnswer())
	assert.Equal(t, 0, s.Answers()[0])
	assert.Equal(t, 1, s.Score(), "question 0 answer is index 0 which is correct")
}

func TestSelectOptionOutOfRange(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	assert.ErrorIs(t, s.SelectOption(-1), ErrInvalidOption)
	assert.ErrorIs(t, s.SelectOption(OptionCount), ErrInvalidOption)
	assert.Equal(t, Unanswered, s.SelectedAnswer())
}

func TestNextAdvancesWithoutCompleting(t *testing.T) {
	deps, _, store := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	for i := 0; i < s.Len()-1; i++ {
		assert.Equal(t, i, s.CurrentIndex())
		s.Next()
		assert.False(t, s.Completed())
	}
	assert.Equal(t, s.Len()-1, s.CurrentIndex())
	assert.Empty(t, store.records)
}

func TestNextOnLastQuestionFinalizes(t *testing.T) {
	deps, sink, store := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	// Answer questions 0..8 correctly, leave 9 unanswered.
	for i := 0; i < 9; i++ {
		require.NoError(t, s.SelectOption(s.CurrentQuestion().CorrectIndex))
		s.Next()
	}
	s.Next()

	assert.True(t, s.Completed())
	assert.Equal(t, 9, s.Score())

	require.Len(t, store.records, 1)
	rec := store.records[0]
	assert.Equal(t, "user-1", rec.UserID)
	assert.Equal(t, BankSimple, rec.BankID)
	assert.Equal(t, 9, rec.Score)
	assert.Equal(t, 10, rec.TotalQuestions)
	assert.False(t, rec.CompletedAt.IsZero())

	require.Len(t, sink.events, 2)
	assert.Equal(t, "Completed quiz: simple (score 9/10)", sink.events[1].Action)
}

func TestNextAfterCompletionIsNoOp(t *testing.T) {
	deps, sink, store := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	for i := 0; i < s.Len(); i++ {
		s.Next()
	}
	require.True(t, s.Completed())
	scoreBefore := s.Score()

	s.Next()
	s.Next()

	assert.True(t, s.Completed())
	assert.Equal(t, scoreBefore, s.Score())
	assert.Len(t, store.records, 1, "attempt saved exactly once")
	assert.Len(t, sink.events, 2, "no re-emission after completion")
}

func TestSelectOptionAfterCompletion(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	for i := 0; i < s.Len(); i++ {
		s.Next()
	}
	assert.ErrorIs(t, s.SelectOption(1), ErrCompleted)
}

func TestPreviousAtStartAndAnswerRetention(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	s.Previous()
	assert.Equal(t, 0, s.CurrentIndex())

	require.NoError(t, s.SelectOption(3))
	s.Next()
	s.Previous()
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 3, s.SelectedAnswer(), "previous never clears a recorded answer")
}

func TestScoreTracksAnswers(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Score())

	// Wrong then right on the same question.
	wrong := (s.CurrentQuestion().CorrectIndex + 1) % OptionCount
	require.NoError(t, s.SelectOption(wrong))
	assert.Equal(t, 0, s.Score())
	require.NoError(t, s.SelectOption(s.CurrentQuestion().CorrectIndex))
	assert.Equal(t, 1, s.Score())

	s.Next()
	require.NoError(t, s.SelectOption(s.CurrentQuestion().CorrectIndex))
	assert.Equal(t, 2, s.Score())
}

func TestRetryProducesFreshSession(t *testing.T) {
	deps, sink, _ := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	require.NoError(t, s.SelectOption(1))
	for i := 0; i < s.Len(); i++ {
		s.Next()
	}
	require.True(t, s.Completed())

	fresh, err := s.Retry(context.Background())
	require.NoError(t, err)
	require.NotSame(t, s, fresh)

	assert.Equal(t, BankSimple, fresh.BankID())
	assert.Equal(t, 0, fresh.CurrentIndex())
	assert.False(t, fresh.Completed())
	for _, a := range fresh.Answers() {
		assert.Equal(t, Unanswered, a)
	}
	// Original stays completed and untouched.
	assert.True(t, s.Completed())
	assert.Equal(t, "Started quiz: simple", sink.events[len(sink.events)-1].Action)
}

func TestResultsReview(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	s, err := Start(context.Background(), deps, BankSimple)
	require.NoError(t, err)

	require.NoError(t, s.SelectOption(s.CurrentQuestion().CorrectIndex))
	for i := 0; i < s.Len(); i++ {
		s.Next()
	}

	results := s.Results()
	require.Len(t, results, 10)
	assert.True(t, results[0].Correct)
	assert.Equal(t, 0, results[0].Selected)
	for _, r := range results[1:] {
		assert.False(t, r.Correct)
		assert.Equal(t, Unanswered, r.Selected)
	}
}

func TestParseSetBankID(t *testing.T) {
	tests := []struct {
		id      BankID
		branch  string
		subject string
		ok      bool
	}{
		{SetBankID("computer", "algorithms"), "computer", "algorithms", true},
		{BankSimple, "", "", false},
		{BankID("set:"), "", "", false},
		{BankID("set:computer"), "", "", false},
	}
	for _, tt := range tests {
		branch, subject, ok := ParseSetBankID(tt.id)
		assert.Equal(t, tt.ok, ok, string(tt.id))
		assert.Equal(t, tt.branch, branch)
		assert.Equal(t, tt.subject, subject)
	}
}

func TestQuestionValidate(t *testing.T) {
	valid := Question{Prompt: "p", Options: [OptionCount]string{"a", "b", "c", "d"}, CorrectIndex: 2}
	assert.NoError(t, valid.Validate())

	noPrompt := valid
	noPrompt.Prompt = ""
	assert.Error(t, noPrompt.Validate())

	badIndex := valid
	badIndex.CorrectIndex = OptionCount
	assert.Error(t, badIndex.Validate())

	emptyOption := valid
	emptyOption.Options[3] = ""
	assert.Error(t, emptyOption.Validate())
}

func TestLoadBankErrorWrapsProviderError(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	sentinel := errors.New("backend down")
	deps.Banks = &failingBanks{err: sentinel}

	_, err := Start(context.Background(), deps, BankSimple)
	assert.ErrorIs(t, err, sentinel)
}

type failingBanks struct{ err error }

func (f *failingBanks) LoadBank(context.Context, BankID) ([]Question, error) {
	return nil, f.err
}
