package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ResolveWindow decide a janela de tempo do relatório. A precedência é
// fixa: período explícito, depois CPF (janela aberta), depois mês/ano,
// e por fim o mês corrente até hoje.
func ResolveWindow(filter domain.ReportFilter, now time.Time) domain.Window {
	if filter.StartDate != "" && filter.EndDate != "" {
		return domain.Window{
			Start: filter.StartDate,
			End:   filter.EndDate,
			Label: "Filtro por período",
		}
	}

	if strings.TrimSpace(filter.CPF) != "" {
		return domain.Window{Label: "Filtro por CPF"}
	}

	local := now.In(domain.SaoPaulo())

	if filter.Month != "" || filter.Year != "" {
		if window, ok := monthYearWindow(filter.Month, filter.Year, local.Year()); ok {
			return window
		}
	}
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, local.Location())

	return domain.Window{
		Start: start.Format("2006-01-02"),
		End:   local.Format("2006-01-02"),
		Label: fmt.Sprintf("%s/%d", monthNames[local.Month()-1], local.Year()),
	}
}

// monthYearWindow aceita mês e ano em qualquer combinação: mês sem ano
// assume o ano corrente; ano sem mês fecha o ano civil inteiro.
func monthYearWindow(monthStr, yearStr string, currentYear int) (domain.Window, bool) {
	year := currentYear
	if yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1900 {
			return domain.Window{}, false
		}
		year = parsed
	}

	if monthStr == "" {
		return domain.Window{
			Start: fmt.Sprintf("%d-01-01", year),
			End:   fmt.Sprintf("%d-12-31", year),
			Label: fmt.Sprintf("Ano de %d", year),
		}, true
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return domain.Window{}, false
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, domain.SaoPaulo())
	end := start.AddDate(0, 1, -1)

	return domain.Window{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
		Label: fmt.Sprintf("%s/%d", monthNames[month-1], year),
	}, true
}

// PeriodWindow traduz os sentinelas de período do dashboard e do painel
// em uma janela de datas locais.
func PeriodWindow(period string, now time.Time) domain.Window {
	local := now.In(domain.SaoPaulo())
	today := local.Format("2006-01-02")

	switch period {
	case domain.PeriodToday:
		return domain.Window{Start: today, End: today, Label: period}
	case domain.PeriodLastWeek:
		return domain.Window{
			Start: local.AddDate(0, 0, -7).Format("2006-01-02"),
			End:   today,
			Label: period,
		}
	case domain.PeriodLastMonth:
		return domain.Window{
			Start: local.AddDate(0, -1, 0).Format("2006-01-02"),
			End:   today,
			Label: period,
		}
	case domain.PeriodAll:
		return domain.Window{
			Start: domain.OpenRangeStart,
			End:   domain.OpenRangeEnd,
			Label: period,
		}
	}

	// Padrão: mês corrente até hoje.
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, local.Location())
	return domain.Window{
		Start: start.Format("2006-01-02"),
		End:   today,
		Label: "mes_atual",
	}
}
