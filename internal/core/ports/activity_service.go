package ports

import (
	"context"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

// ActivityService records user actions and reads the trail back. Record is
// best-effort: a storage failure returns nil entry and never propagates to
// the triggering operation.
type ActivityService interface {
	Record(ctx context.Context, userID, userName, action string, details map[string]any) *domain.ActivityEntry
	ListAll(ctx context.Context) ([]domain.ActivityEntry, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ActivityEntry, error)
}
