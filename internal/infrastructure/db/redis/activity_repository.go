package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

const activityKey = "activity:log"

// ActivityRepository keeps the activity trail in a Redis list. LPUSH gives
// the newest-first ordering and LTRIM enforces the 100-entry cap in the
// same pipeline as the insert.
type ActivityRepository struct {
	client *redis.Client
}

func NewActivityRepository(client *redis.Client) *ActivityRepository {
	return &ActivityRepository{client: client}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode activity entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, activityKey, data)
	pipe.LTrim(ctx, activityKey, 0, domain.MaxActivityEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListAll(ctx context.Context) ([]domain.ActivityEntry, error) {
	raw, err := r.client.LRange(ctx, activityKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	entries := make([]domain.ActivityEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.ActivityEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode activity entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]domain.ActivityEntry, error) {
	entries, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		if e.UserID == userID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
