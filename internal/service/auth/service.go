package auth

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
	"github.com/simon1400/barbitch-admin/internal/domain/auth"
	"github.com/simon1400/barbitch-admin/internal/domain/user"
	"github.com/simon1400/barbitch-admin/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

// Refresh rotates a valid refresh token into a fresh token pair. The
// presented token is revoked so it cannot be replayed.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	claims := token.PrivateClaims()
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, auth.ErrInvalidToken
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(account)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(account user.User) (*auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.Role, account.StaffID)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		Role:         string(account.Role),
		StaffID:      account.StaffID,
	}, nil
}
