package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/internal/dto/request"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testAuthConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:             "test-secret",
			AccessExpiryMin:    15,
			RefreshExpiryHours: 24,
		},
	}
}

func testUser(t *testing.T, email, password string, active bool) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)

	return &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        email,
		PasswordHash: hash,
		IsActive:     active,
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testAuthConfig(), zap.NewNop())

	existing := testUser(t, "pilot@example.com", "first-password", true)
	userRepo.On("FindByEmail", mock.Anything, "pilot@example.com").Return(existing, nil).Once()

	req := &request.RegisterRequest{Email: "pilot@example.com", Password: "new-password"}
	_, err := svc.Register(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email already registered")
	userRepo.AssertNotCalled(t, "Create")
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testAuthConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "pilot@example.com").Return(nil, nil).Once()

	var created *entity.User
	userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil).Once()

	req := &request.RegisterRequest{Email: "pilot@example.com", Password: "long-enough-password"}
	resp, err := svc.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "pilot@example.com", resp.Email)
	assert.True(t, resp.IsActive)

	assert.NotNil(t, created)
	assert.True(t, utils.CheckPassword("long-enough-password", created.PasswordHash))
	userRepo.AssertExpectations(t)
}

func TestToken_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testAuthConfig(), zap.NewNop())

	userRepo.On("FindByEmail", mock.Anything, "pilot@example.com").Return(nil, nil).Once()

	req := &request.LoginRequest{Email: "pilot@example.com", Password: "whatever-pass"}
	_, err := svc.Token(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestToken_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testAuthConfig(), zap.NewNop())

	user := testUser(t, "pilot@example.com", "correct-password", true)
	userRepo.On("FindByEmail", mock.Anything, "pilot@example.com").Return(user, nil).Once()

	req := &request.LoginRequest{Email: "pilot@example.com", Password: "wrong-password"}
	_, err := svc.Token(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestToken_DeactivatedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testAuthConfig(), zap.NewNop())

	user := testUser(t, "pilot@example.com", "correct-password", false)
	userRepo.On("FindByEmail", mock.Anything, "pilot@example.com").Return(user, nil).Once()

	req := &request.LoginRequest{Email: "pilot@example.com", Password: "correct-password"}
	_, err := svc.Token(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account is deactivated")
}

func TestToken_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	cfg := testAuthConfig()
	svc := NewAuthService(userRepo, cfg, zap.NewNop())

	user := testUser(t, "pilot@example.com", "correct-password", true)
	userRepo.On("FindByEmail", mock.Anything, "pilot@example.com").Return(user, nil).Once()

	req := &request.LoginRequest{Email: "pilot@example.com", Password: "correct-password"}
	pair, err := svc.Token(context.Background(), req)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	accessClaims, err := utils.ParseToken(cfg.JWT.Secret, pair.Access)
	assert.NoError(t, err)
	assert.Equal(t, utils.TokenTypeAccess, accessClaims.TokenType)
	assert.Equal(t, user.ID, accessClaims.UserID)

	refreshClaims, err := utils.ParseToken(cfg.JWT.Secret, pair.Refresh)
	assert.NoError(t, err)
	assert.Equal(t, utils.TokenTypeRefresh, refreshClaims.TokenType)
}

// An access token must not pass for a refresh token.
func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	userRepo := new(MockUserRepository)
	cfg := testAuthConfig()
	svc := NewAuthService(userRepo, cfg, zap.NewNop())

	access, err := utils.GenerateToken(cfg.JWT.Secret, uuid.New(), "pilot@example.com", utils.TokenTypeAccess, time.Minute)
	assert.NoError(t, err)

	req := &request.RefreshRequest{Refresh: access}
	_, err = svc.RefreshToken(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token is invalid or expired")
	userRepo.AssertNotCalled(t, "FindByID")
}

func TestRefreshToken_DeactivatedUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	cfg := testAuthConfig()
	svc := NewAuthService(userRepo, cfg, zap.NewNop())

	user := testUser(t, "pilot@example.com", "correct-password", false)
	refresh, err := utils.GenerateToken(cfg.JWT.Secret, user.ID, user.Email, utils.TokenTypeRefresh, time.Minute)
	assert.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	req := &request.RefreshRequest{Refresh: refresh}
	_, err = svc.RefreshToken(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token is invalid or expired")
}

func TestRefreshToken_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	cfg := testAuthConfig()
	svc := NewAuthService(userRepo, cfg, zap.NewNop())

	user := testUser(t, "pilot@example.com", "correct-password", true)
	refresh, err := utils.GenerateToken(cfg.JWT.Secret, user.ID, user.Email, utils.TokenTypeRefresh, time.Minute)
	assert.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

	req := &request.RefreshRequest{Refresh: refresh}
	resp, err := svc.RefreshToken(context.Background(), req)

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Access)

	claims, err := utils.ParseToken(cfg.JWT.Secret, resp.Access)
	assert.NoError(t, err)
	assert.Equal(t, utils.TokenTypeAccess, claims.TokenType)
	userRepo.AssertExpectations(t)
}

func TestVerifyToken(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(new(MockUserRepository), cfg, zap.NewNop())

	valid, err := utils.GenerateToken(cfg.JWT.Secret, uuid.New(), "pilot@example.com", utils.TokenTypeAccess, time.Minute)
	assert.NoError(t, err)

	assert.NoError(t, svc.VerifyToken(context.Background(), &request.VerifyRequest{Token: valid}))

	err = svc.VerifyToken(context.Background(), &request.VerifyRequest{Token: "not-a-token"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token is invalid or expired")
}
