package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

// ActivityHooks are optional observability callbacks. Either field may be
// nil.
type ActivityHooks struct {
	// OnRecord fires after an entry is persisted.
	OnRecord func(action string)
	// OnFailure fires once per swallowed storage failure; it is the only
	// caller-visible signal that a write was lost.
	OnFailure func()
}

// ActivityService writes and reads the capped activity trail. Recording is
// best-effort: a storage failure is logged and counted through the failure
// hook, and the triggering operation is never aborted.
type ActivityService struct {
	repo  ports.ActivityRepository
	log   zerolog.Logger
	clock Clock
	hooks ActivityHooks
}

func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger, clock Clock, hooks ActivityHooks) *ActivityService {
	if clock == nil {
		clock = systemClock{}
	}
	return &ActivityService{repo: repo, log: log, clock: clock, hooks: hooks}
}

func (s *ActivityService) Record(ctx context.Context, userID, userName, action string, details map[string]any) *domain.ActivityEntry {
	entry := &domain.ActivityEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Action:    action,
		Details:   details,
		Timestamp: s.clock.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Error().Err(err).
			Str("action", action).
			Str("user_id", userID).
			Msg("failed to record activity")
		if s.hooks.OnFailure != nil {
			s.hooks.OnFailure()
		}
		return nil
	}

	if s.hooks.OnRecord != nil {
		s.hooks.OnRecord(action)
	}
	return entry
}

func (s *ActivityService) ListAll(ctx context.Context) ([]domain.ActivityEntry, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}

func (s *ActivityService) ListByUser(ctx context.Context, userID string) ([]domain.ActivityEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activity by user: %w", err)
	}
	return entries, nil
}
