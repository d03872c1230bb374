package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero permanece zero", input: 0, expected: 0},
		{name: "duas casas exatas", input: 1234.56, expected: 1234.56},
		{name: "corta a terceira casa", input: 10.994, expected: 10.99},
		{name: "sobe a terceira casa", input: 10.996, expected: 11.0},
		{name: "dízima de divisão", input: 40000.0 / 7, expected: 5714.29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithTwoDecimalPlace(tt.input), 0.001)
		})
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "vírgula decimal", input: "1234,56", expected: 1234.56},
		{name: "ponto decimal", input: "1234.56", expected: 1234.56},
		{name: "inteiro", input: "500", expected: 500},
		{name: "com espaços", input: "  42,50  ", expected: 42.5},
		{name: "vazio vira zero", input: "", expected: 0},
		{name: "texto vira zero", input: "abc", expected: 0},
		{name: "separador de milhar não é aceito", input: "1.234,56", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMoney(tt.input))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 84, ParseCount("84"))
	assert.Equal(t, 12, ParseCount(" 12 "))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("84x"))
	assert.Equal(t, 0, ParseCount("8,5"))
}
