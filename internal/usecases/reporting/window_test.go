package reporting

import (
	"testing"
	"time"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveWindow(t *testing.T) {
	// Quinta-feira, meio do mês.
	now := time.Date(2025, time.March, 20, 15, 0, 0, 0, domain.SaoPaulo())

	tests := []struct {
		name     string
		filter   domain.ReportFilter
		expected domain.Window
	}{
		{
			name: "período explícito tem precedência sobre tudo",
			filter: domain.ReportFilter{
				StartDate: "2025-01-01",
				EndDate:   "2025-01-31",
				CPF:       "12345678900",
				Month:     "2",
				Year:      "2025",
			},
			expected: domain.Window{
				Start: "2025-01-01",
				End:   "2025-01-31",
				Label: "Filtro por período",
			},
		},
		{
			name:   "CPF abre a janela inteira",
			filter: domain.ReportFilter{CPF: "12345678900", Month: "2", Year: "2025"},
			expected: domain.Window{
				Label: "Filtro por CPF",
			},
		},
		{
			name:   "mês e ano geram o mês fechado",
			filter: domain.ReportFilter{Month: "2", Year: "2025"},
			expected: domain.Window{
				Start: "2025-02-01",
				End:   "2025-02-28",
				Label: "Fevereiro/2025",
			},
		},
		{
			name:   "dezembro fecha no dia 31",
			filter: domain.ReportFilter{Month: "12", Year: "2024"},
			expected: domain.Window{
				Start: "2024-12-01",
				End:   "2024-12-31",
				Label: "Dezembro/2024",
			},
		},
		{
			name:   "mês sem ano assume o ano corrente",
			filter: domain.ReportFilter{Month: "2"},
			expected: domain.Window{
				Start: "2025-02-01",
				End:   "2025-02-28",
				Label: "Fevereiro/2025",
			},
		},
		{
			name:   "ano sem mês fecha o ano civil",
			filter: domain.ReportFilter{Year: "2024"},
			expected: domain.Window{
				Start: "2024-01-01",
				End:   "2024-12-31",
				Label: "Ano de 2024",
			},
		},
		{
			name:   "sem filtro vale o mês corrente até hoje",
			filter: domain.ReportFilter{},
			expected: domain.Window{
				Start: "2025-03-01",
				End:   "2025-03-20",
				Label: "Março/2025",
			},
		},
		{
			name:   "mês inválido cai no padrão",
			filter: domain.ReportFilter{Month: "13", Year: "2025"},
			expected: domain.Window{
				Start: "2025-03-01",
				End:   "2025-03-20",
				Label: "Março/2025",
			},
		},
		{
			name:   "data_ini sozinha não fecha a janela explícita",
			filter: domain.ReportFilter{StartDate: "2025-01-01"},
			expected: domain.Window{
				Start: "2025-03-01",
				End:   "2025-03-20",
				Label: "Março/2025",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ResolveWindow(tt.filter, now)
			assert.Equal(t, tt.expected, window)
		})
	}
}

func TestResolveWindowCPFIsOpen(t *testing.T) {
	window := ResolveWindow(domain.ReportFilter{CPF: "987"}, time.Now())
	assert.True(t, window.Open())
}

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2025, time.March, 20, 15, 0, 0, 0, domain.SaoPaulo())

	tests := []struct {
		name          string
		period        string
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "hoje",
			period:        domain.PeriodToday,
			expectedStart: "2025-03-20",
			expectedEnd:   "2025-03-20",
		},
		{
			name:          "última semana",
			period:        domain.PeriodLastWeek,
			expectedStart: "2025-03-13",
			expectedEnd:   "2025-03-20",
		},
		{
			name:          "último mês",
			period:        domain.PeriodLastMonth,
			expectedStart: "2025-02-20",
			expectedEnd:   "2025-03-20",
		},
		{
			name:          "tudo usa os limites sentinela",
			period:        domain.PeriodAll,
			expectedStart: domain.OpenRangeStart,
			expectedEnd:   domain.OpenRangeEnd,
		},
		{
			name:          "período desconhecido cai no mês corrente",
			period:        "qualquer_coisa",
			expectedStart: "2025-03-01",
			expectedEnd:   "2025-03-20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := PeriodWindow(tt.period, now)
			assert.Equal(t, tt.expectedStart, window.Start)
			assert.Equal(t, tt.expectedEnd, window.End)
		})
	}
}
