package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/reporting"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/consigtech/proposal-tracker-api/pkg/utils"
)

// filterFromQuery monta o filtro do relatório a partir da query string.
// Parâmetros ausentes ficam vazios e não viram cláusula; datas malformadas
// são descartadas como se não tivessem sido enviadas.
func filterFromQuery(r *http.Request) domain.ReportFilter {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("pagina"))
	if err != nil || page < 1 {
		page = 1
	}

	return domain.ReportFilter{
		Consultant:    q.Get("usuario"),
		StartDate:     dateParam(q, "data_ini"),
		EndDate:       dateParam(q, "data_fim"),
		Month:         q.Get("mes"),
		Year:          q.Get("ano"),
		Observation:   q.Get("observacao"),
		TypedPassword: q.Get("senha_digitada"),
		Source:        q.Get("fonte"),
		PlanTable:     q.Get("tabela"),
		Bank:          q.Get("banco"),
		CPF:           q.Get("cpf"),
		Page:          page,
	}
}

func dateParam(q url.Values, key string) string {
	raw := q.Get(key)
	if _, err := utils.ParseDate(raw); err != nil {
		return ""
	}

	return raw
}

func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.BuildReport(filterFromQuery(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao montar relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// ExportReport devolve o conjunto filtrado inteiro como CSV para download
func ExportReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := fmt.Sprintf("relatorio_propostas_%s.csv",
			time.Now().In(domain.SaoPaulo()).Format("2006-01-02"))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := service.ExportCSV(filterFromQuery(r), w); err != nil {
			// O cabeçalho já foi enviado; resta registrar a falha.
			log.ForContext(r.Context()).WithError(err).Error("erro ao exportar relatório")
		}
	}
}
