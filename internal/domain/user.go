package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	PasswordHash string `json:"senha,omitempty"`
	Role         string `json:"role"`
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"nome"`
	Password *string `json:"senha"`
	Role     *string `json:"role"`
}

// Claims é o contexto de autenticação imutável da requisição: identidade e
// papel viajam no token, nunca em estado global compartilhado.
type Claims struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	UserRole string `json:"user_role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.UserRole == RoleAdmin
}
