package handler

import (
	"net/http"

	"github.com/consigtech/proposal-tracker-api/internal/usecases/goaling"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
)

type SetGoalRequest struct {
	Value float64 `json:"meta"`
}

type SetConsultantGoalRequest struct {
	Consultant string  `json:"consultor"`
	Value      float64 `json:"meta"`
}

func GetGoals(service goaling.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.Overview()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao listar metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}

func SetGlobalGoal(service goaling.GoalManager) http.HandlerFunc {
	return setGoal(func(req SetGoalRequest) error {
		return service.SetGlobalGoal(req.Value)
	})
}

func SetDailyGoal(service goaling.GoalManager) http.HandlerFunc {
	return setGoal(func(req SetGoalRequest) error {
		return service.SetDailyGoal(req.Value)
	})
}

func setGoal(apply func(SetGoalRequest) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := apply(req); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao gravar meta")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func SetConsultantGoal(service goaling.GoalManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetConsultantGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetConsultantGoal(req.Consultant, req.Value); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao gravar meta individual")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
