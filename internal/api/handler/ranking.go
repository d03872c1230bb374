package handler

import (
	"net/http"

	"github.com/consigtech/proposal-tracker-api/internal/usecases/ranking"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
)

func GetRanking(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		result, err := service.ConsultantRanking(q.Get("data_ini"), q.Get("data_fim"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao montar ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar ranking", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func GetDailyIndex(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.DailyIndex()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao montar índice do dia")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar índice do dia", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
