// Package apiErrors padroniza os erros devolvidos pela API
package apiErrors

import (
	"encoding/json"
	"net/http"
)

const (
	// Erros de autenticação (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // Nome ou senha incorretos
	ErrUserNotFound          = "AUTH_002" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_003" // Token inválido
	ErrExpiredToken          = "AUTH_004" // Token expirado
	ErrInsufficientPrivilege = "AUTH_005" // Acesso restrito a administradores
	ErrUserAlreadyExists     = "AUTH_006" // Nome de usuário já utilizado

	// Erros de validação (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Registro não encontrado

	// Erros do servidor (SRV_*)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado na resposta HTTP. Códigos
// desconhecidos viram 500.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
