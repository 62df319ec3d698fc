package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValid(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets policy", "Secret1!", true},
		{"too short", "Ab1!", false},
		{"no leading uppercase", "secret1!", false},
		{"missing number", "Secret!!", false},
		{"missing symbol", "Secret12", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordValid(tt.password))
		})
	}
}
