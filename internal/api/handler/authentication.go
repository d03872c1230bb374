package handler

import (
	"net/http"

	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/internal/usecases/authenticating"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/consigtech/proposal-tracker-api/pkg/middleware"
	"github.com/pkg/errors"
)

type LoginRequest struct {
	Name     string `json:"nome"`
	Password string `json:"senha"`
}

type ResetPasswordRequest struct {
	Name string `json:"nome"`
}

type ResetPasswordResponse struct {
	Password string `json:"senha_provisoria"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Name, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna o perfil do usuário autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao obter perfil")
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao enviar resposta")
		}
	}
}

// ResetPassword gera uma senha provisória para o usuário informado. A
// senha é devolvida em claro uma única vez.
func ResetPassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		newPassword, err := service.ResetPassword(req.Name)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ResetPasswordResponse{
			Password: newPassword,
		})
	}
}

// handleAuthError traduz erros do caso de uso de autenticação para a
// resposta padronizada.
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Nome ou senha incorretos", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno de autenticação", nil)
	}
}
