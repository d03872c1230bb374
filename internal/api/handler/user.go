package handler

import (
	"net/http"
	"strconv"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/authenticating"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

type CreateUserRequest struct {
	Name     string `json:"nome"`
	Password string `json:"senha"`
	Role     string `json:"role"`
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao listar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.CreateUser(req.Name, req.Password, req.Role)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(id)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		if err := service.UpdateUser(&req); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteUser(id); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// pathID extrai e valida o parâmetro :id da URL
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}

	return id, true
}
