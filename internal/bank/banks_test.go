package bank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
)

func TestBuiltinBanksAreValid(t *testing.T) {
	for _, info := range Catalog() {
		qs, ok := Builtin(info.ID)
		require.True(t, ok, string(info.ID))
		assert.Len(t, qs, 10, string(info.ID))
		assert.Equal(t, len(qs), info.QuestionCount)
		for _, q := range qs {
			assert.NoError(t, q.Validate())
		}
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	a, ok := Builtin(quiz.BankSimple)
	require.True(t, ok)
	a[0].Prompt = "mutated"

	b, _ := Builtin(quiz.BankSimple)
	assert.NotEqual(t, "mutated", b[0].Prompt)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider()

	qs, err := p.LoadBank(context.Background(), quiz.BankEngHard)
	require.NoError(t, err)
	assert.Len(t, qs, 10)

	_, err = p.LoadBank(context.Background(), quiz.BankID("unknown-bank"))
	assert.ErrorIs(t, err, quiz.ErrUnknownBank)
}

func TestSubjectCatalog(t *testing.T) {
	assert.Len(t, Branches(), 8)
	for _, b := range Branches() {
		assert.True(t, IsBranch(b.ID))
		m, ok := Subjects(b.ID)
		require.True(t, ok)
		for _, year := range YearKeys {
			assert.NotEmpty(t, m[year], "%s/%s", b.ID, year)
		}
	}
	_, ok := Subjects("nope")
	assert.False(t, ok)
}
