package authenticating

import (
	"testing"
	"time"

	"github.com/consigtech/proposal-tracker-api/infrastructure/repository/mocks"
	"github.com/consigtech/proposal-tracker-api/internal/config"
	"github.com/consigtech/proposal-tracker-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{SecretKey: "segredo-de-teste"},
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	storedUser := &domain.User{
		ID:           7,
		Name:         "Maria",
		PasswordHash: hashOf(t, "senha123"),
		Role:         domain.RoleUser,
	}

	userRepo.EXPECT().GetByName("Maria").Return(storedUser, nil)
	token, err := service.LoginUser("Maria", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Maria", claims.UserName)
	assert.Equal(t, domain.RoleUser, claims.UserRole)
}

func TestLoginUserDoesNotLeakExistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	userRepo.EXPECT().GetByName("Fantasma").Return(nil, nil)
	_, errUnknown := service.LoginUser("Fantasma", "qualquer")
	require.Error(t, errUnknown)

	stored := &domain.User{ID: 1, Name: "Maria", PasswordHash: hashOf(t, "certa")}
	userRepo.EXPECT().GetByName("Maria").Return(stored, nil)
	_, errWrongPassword := service.LoginUser("Maria", "errada")
	require.Error(t, errWrongPassword)

	// Nome inexistente e senha errada devem responder com a mesma mensagem.
	assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
	assert.True(t, IsCredentialsError(errUnknown))
	assert.True(t, IsCredentialsError(errWrongPassword))
}

func TestLoginUserTrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	stored := &domain.User{ID: 2, Name: "João", PasswordHash: hashOf(t, "senha")}
	userRepo.EXPECT().GetByName("João").Return(stored, nil)

	token, err := service.LoginUser("  João  ", "senha")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginUserMissingData(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	_, err := service.LoginUser("", "senha")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	_, err = service.LoginUser("Maria", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockUserRepository(ctrl), cfg)

	claims := domain.Claims{
		UserID:   3,
		UserName: "Maria",
		UserRole: domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Auth.SecretKey))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	claims := domain.Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("outro-segredo"))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		expectedRole string
	}{
		{name: "papel admin é mantido", role: domain.RoleAdmin, expectedRole: domain.RoleAdmin},
		{name: "papel comum é mantido", role: domain.RoleUser, expectedRole: domain.RoleUser},
		{name: "papel desconhecido vira comum", role: "gerente", expectedRole: domain.RoleUser},
		{name: "papel vazio vira comum", role: "", expectedRole: domain.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			service := NewService(userRepo, testConfig())

			userRepo.EXPECT().GetByName("Novo").Return(nil, nil)
			userRepo.EXPECT().Create(gomock.Any()).
				DoAndReturn(func(user *domain.User) error {
					assert.Equal(t, tt.expectedRole, user.Role)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
					user.ID = 10
					return nil
				})

			user, err := service.CreateUser("Novo", "senha123", tt.role)
			require.NoError(t, err)
			assert.Equal(t, 10, user.ID)
			assert.Equal(t, tt.expectedRole, user.Role)
			// O hash não deve sair da camada de serviço.
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestCreateUserDuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	userRepo.EXPECT().GetByName("Maria").
		Return(&domain.User{ID: 1, Name: "Maria"}, nil)

	_, err := service.CreateUser("Maria", "senha", domain.RoleUser)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUpdateUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	userRepo.EXPECT().GetByID(99).Return(nil, nil)

	err := service.UpdateUser(&domain.UpdateUserRequest{ID: 99})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	userRepo.EXPECT().GetByID(5).Return(&domain.User{ID: 5, Name: "Maria"}, nil)
	userRepo.EXPECT().Update(gomock.Any()).
		DoAndReturn(func(req *domain.UpdateUserRequest) error {
			require.NotNil(t, req.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*req.Password), []byte("nova-senha")))
			return nil
		})

	password := "nova-senha"
	err := service.UpdateUser(&domain.UpdateUserRequest{ID: 5, Password: &password})
	require.NoError(t, err)
}

func TestResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	var storedHash string
	userRepo.EXPECT().UpdatePasswordByName("Maria", gomock.Any()).
		DoAndReturn(func(_ string, hash string) (bool, error) {
			storedHash = hash
			return true, nil
		})

	newPassword, err := service.ResetPassword("Maria")
	require.NoError(t, err)
	assert.Len(t, newPassword, 8)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(newPassword)))
}

func TestResetPasswordUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	userRepo.EXPECT().UpdatePasswordByName("Fantasma", gomock.Any()).Return(false, nil)

	_, err := service.ResetPassword("Fantasma")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
