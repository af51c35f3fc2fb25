package ports

import (
	"context"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// UserRepository is the credential store. Implementations read the backing
// store fresh on every call; Save performs a bulk overwrite of all records
// (last writer wins, no locking).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, users []domain.User) error
}
