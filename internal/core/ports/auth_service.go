package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// RegisterResult is returned by AuthService.Register.
type RegisterResult struct {
	Email string
	ID    string
	Role  string
	// AlreadyExisted is true when the email was registered before; the
	// existing identity is returned unchanged and no new record is created.
	AlreadyExisted bool
}

type AuthService interface {
	Register(ctx context.Context, email, password, adminKey string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
