package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/domain"
	apperrors "github.com/spec-kit/employee-directory/pkg/util/errorutil"
)

// AuthService handles operator login.
type AuthService struct {
	admin    domain.Admin
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service. When no password hash is configured
// the plaintext admin password is hashed once at startup.
func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" {
		if cfg.AdminPassword == "" {
			return nil, errors.New("admin password or password hash required")
		}
		hashed, err := auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		hash = hashed
	}
	return &AuthService{
		admin:    domain.Admin{Username: cfg.AdminUsername, PasswordHash: hash},
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}, nil
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(_ context.Context, username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passErr := auth.ComparePassword(s.admin.PasswordHash, password)
	if !userOK || passErr != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(s.admin.Username, auth.RoleAdmin)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, exp, nil
}
