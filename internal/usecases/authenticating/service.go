// Package authenticating autentica usuários e administra contas e senhas
package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository"
	"github.com/consigtech/proposal-tracker-api/internal/config"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/consigtech/proposal-tracker-api/pkg/apiErrors"
	"github.com/consigtech/proposal-tracker-api/pkg/log"
	"github.com/consigtech/proposal-tracker-api/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(name, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
	CreateUser(name, password, role string) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	DeleteUser(id int) error
	ListUsers() ([]*domain.User, error)
	// ResetPassword gera uma senha provisória para o usuário e a retorna
	// em claro, uma única vez.
	ResetPassword(name string) (string, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *Service) LoginUser(name, password string) (string, error) {
	if name == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e senha são obrigatórios")
	}

	user, err := s.userRepo.GetByName(handleName(name))
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	// Nome inexistente e senha errada respondem igual, para não vazar
	// quais usuários existem.
	if user == nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Nome ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Nome ou senha incorretos")
	}

	token, err := generateJWT(user, s.cfg.Auth.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func handleName(s string) string {
	return strings.TrimSpace(s)
}

func generateJWT(user *domain.User, secretKey string) (string, error) {
	claims := domain.Claims{
		UserID:   user.ID,
		UserName: user.Name,
		UserRole: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.L.WithError(err).Error("erro ao buscar perfil do usuário")
		return nil, err
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) CreateUser(name, password, role string) (*domain.User, error) {
	name = handleName(name)
	if name == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e senha são obrigatórios")
	}

	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	existing, err := s.userRepo.GetByName(name)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Nome de usuário já utilizado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateUser(user *domain.UpdateUserRequest) error {
	if user.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	existing, err := s.userRepo.GetByID(user.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário não encontrado para o ID: %d", user.ID))
	}

	if user.Name != nil {
		*user.Name = handleName(*user.Name)
		if *user.Name == "" {
			return NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "Nome não pode ser vazio")
		}
	}

	if user.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hash := string(hashedPassword)
		user.Password = &hash
	}

	if user.Role != nil && *user.Role != domain.RoleAdmin {
		role := domain.RoleUser
		user.Role = &role
	}

	if err := s.userRepo.Update(user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar usuário")
	}

	return nil
}

func (s *Service) DeleteUser(id int) error {
	existing, err := s.userRepo.GetByID(id)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário não encontrado para o ID: %d", id))
	}

	if err := s.userRepo.Delete(id); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao excluir usuário")
	}

	return nil
}

func (s *Service) ListUsers() ([]*domain.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Service) ResetPassword(name string) (string, error) {
	name = handleName(name)
	if name == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome é obrigatório")
	}

	newPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	updated, err := s.userRepo.UpdatePasswordByName(name, string(hashedPassword))
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao redefinir senha")
	}
	if !updated {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	return newPassword, nil
}
