package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseMoney coage o texto de um formulário para float64. Aceita vírgula
// como separador decimal; valor malformado ou vazio vira zero.
func ParseMoney(raw string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return value
}

// ParseCount coage o texto de um formulário para int, com zero como padrão.
func ParseCount(raw string) int {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}

	return value
}
