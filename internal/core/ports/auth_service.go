package ports

import (
	"context"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

type AuthService interface {
	// Signup registers a new account. Empty roles default to ["viewer"].
	// A duplicate email fails with domain.ErrUserExists.
	Signup(ctx context.Context, name, email, password string, roles []string) (*domain.User, string, error)
	// Login authenticates by email and password and returns a session token.
	// Unknown email and wrong password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
