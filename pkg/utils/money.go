package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formata um valor monetário no padrão brasileiro: ponto como
// separador de milhar e vírgula como decimal (R$ 1.234,56).
func FormatBRL(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)

	text := d.StringFixed(2)
	negative := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	parts := strings.SplitN(text, ".", 2)
	integer, fraction := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	formatted := "R$ " + grouped.String() + "," + fraction
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}
