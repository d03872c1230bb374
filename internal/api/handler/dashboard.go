package handler

import (
	"net/http"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/dashboarding"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/consigtech/proposal-tracker-api/pkg/middleware"
)

func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		summary, err := service.Summary(query.Get("periodo"), query.Get("data_ini"), query.Get("data_fim"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao montar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

func GetSourcesOverview(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matrix, err := service.SourcesOverview()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao montar visão por fonte")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar visão por fonte", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(matrix)
	}
}

// GetPanel monta o painel individual. Admin pode inspecionar qualquer
// consultor via query; os demais veem apenas o próprio painel.
func GetPanel(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		consultant := userClaims.UserName
		if requested := r.URL.Query().Get("consultor"); requested != "" && userClaims.IsAdmin() {
			consultant = requested
		}

		panel, err := service.Panel(consultant, r.URL.Query().Get("periodo"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao montar painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar painel", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(panel)
	}
}
