package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/squad-service/internal/auth"
	"github.com/spec-kit/squad-service/internal/config"
	"github.com/spec-kit/squad-service/internal/domain"
	"github.com/spec-kit/squad-service/internal/repository"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

// AuthService coordinates login and the admin bootstrap.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	admin      config.AdminConfig
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), cfg.Auth.IdentityClaim),
		bcryptCost: cfg.Auth.BcryptCost,
		admin:      cfg.Admin,
		logger:     logger,
	}
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password fail identically so the response never reveals whether an
// account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", "", time.Time{}, apperrors.MapError(err)
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return "", "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, auth.TokenType, expiresAt, nil
}

// EnsureAdmin creates the configured bootstrap admin account when absent.
// Idempotent; a no-op when admin credentials are not configured.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	if s.admin.Email == "" || s.admin.Password == "" {
		s.logger.Warn("admin credentials not configured; skipping admin bootstrap")
		return nil
	}

	if _, err := s.users.GetByEmail(ctx, s.admin.Email); err == nil {
		return nil
	} else if err != pgx.ErrNoRows {
		return err
	}

	hash, err := auth.HashPassword(s.admin.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Email:        s.admin.Email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("admin account seeded", zap.Int64("user_id", admin.ID))
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
