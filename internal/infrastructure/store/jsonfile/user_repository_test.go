package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

func testRepo(t *testing.T) *UserRepository {
	t.Helper()
	return NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
}

func testUser(id, email string) *domain.User {
	return &domain.User{
		ID:        id,
		Name:      "User " + id,
		Email:     email,
		Password:  "$2a$10$hash",
		Roles:     []string{domain.RoleViewer},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testUser("u1", "a@test.com"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "u1" {
		t.Fatalf("unexpected created user: %+v", created)
	}

	byEmail, err := repo.FindByEmail(ctx, "a@test.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if byEmail.ID != "u1" || byEmail.Password != "$2a$10$hash" {
		t.Fatalf("round trip lost fields: %+v", byEmail)
	}

	byID, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if byID.Email != "a@test.com" {
		t.Fatalf("unexpected user: %+v", byID)
	}
}

func TestUserRepository_MissingFile(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	// No file yet: reads behave like an empty store.
	if _, err := repo.FindByEmail(ctx, "a@test.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	users, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty store, got %v", users)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, testUser("u1", "dup@test.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := repo.Create(ctx, testUser("u2", "dup@test.com")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_SaveOverwrites(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, testUser(fmt.Sprintf("u%d", i), fmt.Sprintf("u%d@test.com", i))); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	if err := repo.Save(ctx, []domain.User{*testUser("u9", "only@test.com")}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	users, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u9" {
		t.Fatalf("Save did not overwrite: %v", users)
	}
}
