package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
	"github.com/sweetshop/inventory-api/internal/pkg/hash"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	adminKey string
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, adminKey string, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, adminKey: adminKey, logger: logger}
}

// Register creates a new user account. Registering an email that already
// exists is a soft success: the stored identity is returned unchanged and
// the password is neither checked nor rehashed.
func (s *AuthService) Register(ctx context.Context, email, password, adminKey string) (*ports.RegisterResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Info().Str("email", email).Msg("registration replay for existing user")
		return &ports.RegisterResult{
			Email:          existing.Email,
			ID:             existing.ID,
			AlreadyExisted: true,
		}, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: %w", err)
	}

	digest, err := hash.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	role := domain.RoleUser
	if adminKey != "" && adminKey == s.adminKey {
		role = domain.RoleAdmin
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: digest,
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("email", email).Str("role", role).Msg("user registered")

	return &ports.RegisterResult{Email: created.Email, ID: created.ID, Role: created.Role}, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password fail identically so callers cannot enumerate
// registered accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	ok, err := hash.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("stored digest unreadable")
		return "", nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	return token, user, nil
}
