package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lodgeos/internal/config"
	"lodgeos/internal/domain"
	"lodgeos/internal/service"
	"lodgeos/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "lodgeos-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestAuthService_Register_FirstUserBecomesAdmin(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Count", mock.Anything).Return(0, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Email == "owner@lodge.test"
	})).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "owner@lodge.test",
		Password: "password123",
		FullName: "Lodge Owner",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_LaterUsersAreStaff(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Count", mock.Anything).Return(1, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleStaff
	})).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "desk@lodge.test",
		Password: "password123",
		FullName: "Front Desk",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "desk@lodge.test",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleStaff,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "desk@lodge.test").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "desk@lodge.test",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "desk@lodge.test",
		PasswordHash: hashPassword("password123"),
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "desk@lodge.test").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "desk@lodge.test",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "gone@lodge.test",
		PasswordHash: hashPassword("password123"),
		IsActive:     false,
	}
	userRepo.On("GetByEmail", mock.Anything, "gone@lodge.test").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "gone@lodge.test",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "desk@lodge.test",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "desk@lodge.test").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "desk@lodge.test",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	// A refresh token is not valid as an access token.
	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
}
