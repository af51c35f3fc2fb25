package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/pkg/config"
)

func newTestRepository(t *testing.T) *ActivityRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewActivityRepository(client)
}

func testEntry(n int, userID string) *domain.ActivityEntry {
	return &domain.ActivityEntry{
		ID:        fmt.Sprintf("e%d", n),
		UserID:    userID,
		UserName:  "User",
		Action:    domain.ActionUserLogin,
		Details:   map[string]any{"n": float64(n)},
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Second),
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping after connect: %v", err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), config.RedisConfig{Addr: addr, Timeout: time.Second}); err == nil {
		t.Fatalf("expected error for unreachable server")
	}
}

func TestActivityRepository_NewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Insert(ctx, testEntry(i, "u1")); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}

	entries, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "e2" || entries[2].ID != "e0" {
		t.Fatalf("entries not newest first: %v", entries)
	}
}

func TestActivityRepository_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	want := testEntry(7, "u1")
	if err := repo.Insert(ctx, want); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	entries, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	got := entries[0]
	if got.ID != want.ID || got.UserID != want.UserID || got.Action != want.Action {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Fatalf("timestamp changed: %v != %v", got.Timestamp, want.Timestamp)
	}
	if got.Details["n"] != float64(7) {
		t.Fatalf("details lost: %v", got.Details)
	}
}

func TestActivityRepository_CapsAtLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < domain.MaxActivityEntries+1; i++ {
		if err := repo.Insert(ctx, testEntry(i, "u1")); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}

	entries, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(entries) != domain.MaxActivityEntries {
		t.Fatalf("expected %d entries, got %d", domain.MaxActivityEntries, len(entries))
	}
	// Newest survives, oldest is evicted by the LTRIM.
	if entries[0].ID != fmt.Sprintf("e%d", domain.MaxActivityEntries) {
		t.Fatalf("newest entry missing, head is %s", entries[0].ID)
	}
	for _, e := range entries {
		if e.ID == "e0" {
			t.Fatalf("oldest entry should have been evicted")
		}
	}
}

func TestActivityRepository_ListByUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.Insert(ctx, testEntry(0, "u1"))
	repo.Insert(ctx, testEntry(1, "u2"))
	repo.Insert(ctx, testEntry(2, "u1"))

	entries, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for u1, got %d", len(entries))
	}
	if entries[0].ID != "e2" || entries[1].ID != "e0" {
		t.Fatalf("unexpected order: %v", entries)
	}
}

func TestActivityRepository_EmptyTrail(t *testing.T) {
	repo := newTestRepository(t)

	entries, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty trail, got %v", entries)
	}
}
