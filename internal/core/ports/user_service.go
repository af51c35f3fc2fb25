package ports

import (
	"context"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// UpdateProfileInput carries a self-service profile update. Name and Email
// are applied when non-empty. NewPassword requires CurrentPassword to match
// the stored hash.
type UpdateProfileInput struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// UpdateUserInput carries an admin-side user update. Nil Roles leaves the
// role set untouched.
type UpdateUserInput struct {
	Name  string
	Email string
	Roles []string
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	UpdateUser(ctx context.Context, actor *domain.User, userID string, in UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.User, userID string) (*domain.User, error)
}
