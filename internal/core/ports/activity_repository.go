package ports

import (
	"context"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// ActivityRepository persists the capped activity trail. Insert places the
// entry at the head and truncates the store to domain.MaxActivityEntries;
// listings return entries newest first.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	ListAll(ctx context.Context) ([]domain.ActivityEntry, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ActivityEntry, error)
}
