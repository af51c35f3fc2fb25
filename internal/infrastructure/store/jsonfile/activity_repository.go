package jsonfile

import (
	"context"
	"time"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

type activityRecord struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	UserName  string         `json:"userName"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// ActivityRepository stores the activity trail as a JSON array, newest
// first. Insert places the entry at the head and truncates the file to
// domain.MaxActivityEntries.
type ActivityRepository struct {
	path string
}

func NewActivityRepository(path string) *ActivityRepository {
	return &ActivityRepository{path: path}
}

func (r *ActivityRepository) readAll() ([]activityRecord, error) {
	var records []activityRecord
	if _, err := readInto(r.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ActivityRepository) Insert(_ context.Context, entry *domain.ActivityEntry) error {
	records, err := r.readAll()
	if err != nil {
		return err
	}

	records = append([]activityRecord{{
		ID:        entry.ID,
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Action:    entry.Action,
		Details:   entry.Details,
		Timestamp: entry.Timestamp,
	}}, records...)

	if len(records) > domain.MaxActivityEntries {
		records = records[:domain.MaxActivityEntries]
	}

	return writeJSON(r.path, records)
}

func (r *ActivityRepository) ListAll(_ context.Context) ([]domain.ActivityEntry, error) {
	records, err := r.readAll()
	if err != nil {
		return nil, err
	}
	entries := make([]domain.ActivityEntry, 0, len(records))
	for i := range records {
		entries = append(entries, toDomainEntry(&records[i]))
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

func toDomainEntry(rec *activityRecord) domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:        rec.ID,
		UserID:    rec.UserID,
		UserName:  rec.UserName,
		Action:    rec.Action,
		Details:   rec.Details,
		Timestamp: rec.Timestamp,
	}
}
