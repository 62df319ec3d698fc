package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
)

func TestCompositeProviderServesBuiltinBanks(t *testing.T) {
	provider := NewCompositeBankProvider(nil)

	questions, err := provider.LoadBank(context.Background(), quiz.BankSimple)
	require.NoError(t, err)
	assert.Len(t, questions, 10)
}

func TestCompositeProviderUnknownBank(t *testing.T) {
	provider := NewCompositeBankProvider(nil)

	_, err := provider.LoadBank(context.Background(), "no-such-bank")
	assert.ErrorIs(t, err, quiz.ErrUnknownBank)
}

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		branch  string
		subject string
		wantErr error
	}{
		{"known pair", "computer", "Data Structures", nil},
		{"unknown branch", "astrology", "Data Structures", ErrUnknownBranch},
		{"unknown subject", "computer", "Underwater Basket Weaving", ErrUnknownSubject},
		{"subject from other branch", "computer", "Power Systems", ErrUnknownSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSubject(tt.branch, tt.subject)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
