package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "R$ 0,00"},
		{name: "sem milhar", input: 999.9, expected: "R$ 999,90"},
		{name: "com milhar", input: 1234.56, expected: "R$ 1.234,56"},
		{name: "milhões", input: 1234567.89, expected: "R$ 1.234.567,89"},
		{name: "inteiro redondo", input: 2000, expected: "R$ 2.000,00"},
		{name: "negativo", input: -1500.5, expected: "-R$ 1.500,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBRL(tt.input))
		})
	}
}

func TestGenerateTemporaryPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		password, err := GenerateTemporaryPassword()
		assert.NoError(t, err)
		assert.Len(t, password, 8)
		for _, r := range password {
			assert.Contains(t, passwordCharacters, string(r))
		}
		seen[password] = true
	}

	// Vinte sorteios idênticos indicariam um gerador quebrado.
	assert.Greater(t, len(seen), 1)
}
