package repository

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/consigtech/proposal-tracker-api/infrastructure/database"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
)

// adminExclusion mantém consultores com papel admin fora de qualquer
// resultado de relatório ou ranking, independentemente dos demais filtros.
const adminExclusion = "consultor NOT IN (SELECT nome FROM users WHERE role = 'admin')"

// containsFilter é uma cláusula de substring sem diferenciação de
// maiúsculas para um campo de texto livre.
type containsFilter struct {
	column string
	value  string
}

func (f containsFilter) ToSql() (string, []interface{}, error) {
	pattern := "%" + strings.ToLower(f.value) + "%"
	return fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", f.column), []interface{}{pattern}, nil
}

// equalsFoldFilter é uma igualdade sem diferenciação de maiúsculas.
type equalsFoldFilter struct {
	column string
	value  string
}

func (f equalsFoldFilter) ToSql() (string, []interface{}, error) {
	return fmt.Sprintf("LOWER(%s) = LOWER(?)", f.column), []interface{}{f.value}, nil
}

// reportPredicate traduz o conjunto fechado de filtros do relatório em
// cláusulas parametrizadas combinadas por AND. A janela de tempo chega já
// resolvida; janela aberta (filtro por CPF) não restringe datas.
func reportPredicate(filter domain.ReportFilter, window domain.Window) squirrel.And {
	pred := squirrel.And{squirrel.Expr(adminExclusion)}

	if consultant := strings.TrimSpace(filter.Consultant); consultant != "" && consultant != "-" {
		pred = append(pred, equalsFoldFilter{column: "consultor", value: consultant})
	}

	// A janela vem em datas locais; a coluna data guarda o timestamp
	// completo, por isso os limites de dia entram aqui.
	if !window.Open() {
		pred = append(pred, squirrel.Expr(
			"data BETWEEN ? AND ?",
			window.Start+" 00:00:00",
			window.End+" 23:59:59",
		))
	}

	textFilters := []struct {
		column string
		value  string
	}{
		{"cpf", filter.CPF},
		{"observacao", filter.Observation},
		{"senha_digitada", filter.TypedPassword},
		{"fonte", filter.Source},
		{"banco", filter.Bank},
		{"tabela", filter.PlanTable},
	}

	for _, f := range textFilters {
		if value := strings.TrimSpace(f.value); value != "" {
			pred = append(pred, containsFilter{column: f.column, value: value})
		}
	}

	return pred
}

// dateWindowPredicate restringe por data local (dashboard, painel e
// ranking trabalham com datas, não com timestamps completos).
func dateWindowPredicate(d database.Dialect, window domain.Window) squirrel.Sqlizer {
	return squirrel.Expr(d.DateExpr("data")+" BETWEEN ? AND ?", window.Start, window.End)
}
