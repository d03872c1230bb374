package handler

import (
	"net/http"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/proposing"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/consigtech/proposal-tracker-api/pkg/middleware"
	"github.com/pkg/errors"
)

func CreateProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var input domain.ProposalInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// A proposta é sempre registrada em nome de quem está logado.
		proposal, err := service.Create(userClaims.UserName, &input)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao criar proposta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar proposta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(proposal)
	}
}

func GetProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		proposal, err := service.Get(id)
		if err != nil {
			if errors.Is(err, proposing.ErrProposalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Proposta não encontrada", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("erro ao buscar proposta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar proposta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(proposal)
	}
}

func UpdateProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var input domain.ProposalInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.Update(id, &input); err != nil {
			if errors.Is(err, proposing.ErrProposalNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Proposta não encontrada", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("erro ao atualizar proposta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar proposta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.Delete(id); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao excluir proposta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir proposta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
