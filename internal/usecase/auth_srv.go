package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/internal/data/repository"
	"github.com/Zonda001/AirportAPI/internal/dto/request"
	"github.com/Zonda001/AirportAPI/internal/dto/response"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Token(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error)
	RefreshToken(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error)
	VerifyToken(ctx context.Context, req *request.VerifyRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

// Token exchanges credentials for an access/refresh token pair.
func (s *authService) Token(ctx context.Context, req *request.LoginRequest) (*response.TokenPairResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Token validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		s.log.Error("Failed to issue tokens", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue tokens")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return pair, nil
}

// RefreshToken issues a fresh access token from a valid refresh token.
func (s *authService) RefreshToken(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	claims, err := utils.ParseToken(s.config.JWT.Secret, req.Refresh)
	if err != nil {
		s.log.Warn("Invalid refresh token", zap.Error(err))
		return nil, fmt.Errorf("token is invalid or expired")
	}
	if claims.TokenType != utils.TokenTypeRefresh {
		s.log.Warn("Wrong token type for refresh", zap.String("token_type", claims.TokenType))
		return nil, fmt.Errorf("token is invalid or expired")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		s.log.Error("Failed to find user for refresh", zap.Error(err), zap.String("user_id", claims.UserID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("token is invalid or expired")
	}

	accessTTL := time.Duration(s.config.JWT.AccessExpiryMin) * time.Minute
	access, err := utils.GenerateToken(s.config.JWT.Secret, user.ID, user.Email, utils.TokenTypeAccess, accessTTL)
	if err != nil {
		s.log.Error("Failed to generate access token", zap.Error(err))
		return nil, fmt.Errorf("failed to issue tokens")
	}

	return &response.AccessTokenResponse{Access: access}, nil
}

// VerifyToken checks signature and expiry only; a valid token of either
// type passes.
func (s *authService) VerifyToken(ctx context.Context, req *request.VerifyRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, err := utils.ParseToken(s.config.JWT.Secret, req.Token); err != nil {
		s.log.Warn("Token verification failed", zap.Error(err))
		return fmt.Errorf("token is invalid or expired")
	}

	return nil
}

func (s *authService) issueTokenPair(user *entity.User) (*response.TokenPairResponse, error) {
	accessTTL := time.Duration(s.config.JWT.AccessExpiryMin) * time.Minute
	refreshTTL := time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour

	access, err := utils.GenerateToken(s.config.JWT.Secret, user.ID, user.Email, utils.TokenTypeAccess, accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := utils.GenerateToken(s.config.JWT.Secret, user.ID, user.Email, utils.TokenTypeRefresh, refreshTTL)
	if err != nil {
		return nil, err
	}

	return &response.TokenPairResponse{Access: access, Refresh: refresh}, nil
}
