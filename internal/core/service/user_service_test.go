package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

func seedUser(t *testing.T, id, name, email, password string, roles ...string) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return domain.User{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: string(hash),
		Roles:    roles,
	}
}

func newUserService(t *testing.T, users ...domain.User) (*UserService, *stubUserRepo, *stubActivityService) {
	t.Helper()
	repo := &stubUserRepo{users: users}
	activity := &stubActivityService{}
	svc := NewUserService(repo, activity, &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)})
	return svc, repo, activity
}

func TestUserService_UpdateProfile_NameAndEmail(t *testing.T) {
	svc, repo, activity := newUserService(t,
		seedUser(t, "u1", "Old Name", "old@test.com", "pass", domain.RoleViewer))

	updated, err := svc.UpdateProfile(context.Background(), "u1", ports.UpdateProfileInput{
		Name:  "New Name",
		Email: "new@test.com",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "New Name" || updated.Email != "new@test.com" {
		t.Fatalf("unexpected user: %+v", updated)
	}

	stored, _ := repo.FindByID(context.Background(), "u1")
	if stored.Email != "new@test.com" {
		t.Fatalf("update not persisted: %+v", stored)
	}
	if len(activity.recorded) != 1 || activity.recorded[0].Action != domain.ActionUpdateProfile {
		t.Fatalf("expected UPDATE_PROFILE activity, got %v", activity.recorded)
	}
}

func TestUserService_UpdateProfile_PasswordChange(t *testing.T) {
	svc, repo, activity := newUserService(t,
		seedUser(t, "u1", "User", "u@test.com", "oldpass", domain.RoleViewer))

	if _, err := svc.UpdateProfile(context.Background(), "u1", ports.UpdateProfileInput{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass",
	}); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), "u1")
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpass")); err != nil {
		t.Fatalf("new password not stored: %v", err)
	}

	actions := make([]string, 0, len(activity.recorded))
	for _, r := range activity.recorded {
		actions = append(actions, r.Action)
	}
	if len(actions) != 2 || actions[0] != domain.ActionPasswordChange || actions[1] != domain.ActionUpdateProfile {
		t.Fatalf("unexpected activity actions: %v", actions)
	}
}

func TestUserService_UpdateProfile_PasswordChangeGuards(t *testing.T) {
	svc, _, _ := newUserService(t,
		seedUser(t, "u1", "User", "u@test.com", "oldpass", domain.RoleViewer))

	_, err := svc.UpdateProfile(context.Background(), "u1", ports.UpdateProfileInput{
		NewPassword: "newpass",
	})
	if !errors.Is(err, domain.ErrCurrentPasswordRequired) {
		t.Fatalf("expected ErrCurrentPasswordRequired, got %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), "u1", ports.UpdateProfileInput{
		CurrentPassword: "wrong",
		NewPassword:     "newpass",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	svc, _, _ := newUserService(t)

	if _, err := svc.UpdateProfile(context.Background(), "ghost", ports.UpdateProfileInput{Name: "X"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateUser_Roles(t *testing.T) {
	admin := seedUser(t, "a1", "Admin", "admin@test.com", "admin123", domain.RoleAdmin)
	svc, repo, activity := newUserService(t, admin,
		seedUser(t, "u1", "User", "u@test.com", "pass", domain.RoleEditor))

	updated, err := svc.UpdateUser(context.Background(), &admin, "u1", ports.UpdateUserInput{
		Roles: []string{domain.RoleViewer},
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != domain.RoleViewer {
		t.Fatalf("unexpected roles: %v", updated.Roles)
	}

	stored, _ := repo.FindByID(context.Background(), "u1")
	if len(stored.Roles) != 1 || stored.Roles[0] != domain.RoleViewer {
		t.Fatalf("roles not persisted: %v", stored.Roles)
	}
	if len(activity.recorded) != 1 || activity.recorded[0].UserID != "a1" || activity.recorded[0].Action != domain.ActionUpdateUser {
		t.Fatalf("expected UPDATE_USER recorded for the actor, got %v", activity.recorded)
	}
}

func TestUserService_UpdateUser_NilRolesUntouched(t *testing.T) {
	admin := seedUser(t, "a1", "Admin", "admin@test.com", "admin123", domain.RoleAdmin)
	svc, _, _ := newUserService(t, admin,
		seedUser(t, "u1", "User", "u@test.com", "pass", domain.RoleEditor))

	updated, err := svc.UpdateUser(context.Background(), &admin, "u1", ports.UpdateUserInput{Name: "Renamed"})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("name not applied: %+v", updated)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != domain.RoleEditor {
		t.Fatalf("roles should be untouched, got %v", updated.Roles)
	}
}

func TestUserService_UpdateUser_EmptyRoles(t *testing.T) {
	admin := seedUser(t, "a1", "Admin", "admin@test.com", "admin123", domain.RoleAdmin)
	svc, _, _ := newUserService(t, admin,
		seedUser(t, "u1", "User", "u@test.com", "pass", domain.RoleEditor))

	if _, err := svc.UpdateUser(context.Background(), &admin, "u1", ports.UpdateUserInput{Roles: []string{}}); !errors.Is(err, domain.ErrEmptyRoles) {
		t.Fatalf("expected ErrEmptyRoles, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	admin := seedUser(t, "a1", "Admin", "admin@test.com", "admin123", domain.RoleAdmin)
	svc, repo, activity := newUserService(t, admin,
		seedUser(t, "u1", "User", "u@test.com", "pass", domain.RoleViewer))

	deleted, err := svc.DeleteUser(context.Background(), &admin, "u1")
	if err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if deleted.ID != "u1" {
		t.Fatalf("unexpected deleted user: %+v", deleted)
	}

	if _, err := repo.FindByID(context.Background(), "u1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete: %v", err)
	}
	if len(activity.recorded) != 1 || activity.recorded[0].Action != domain.ActionDeleteUser {
		t.Fatalf("expected DELETE_USER activity, got %v", activity.recorded)
	}
}

func TestUserService_DeleteUser_Unknown(t *testing.T) {
	admin := seedUser(t, "a1", "Admin", "admin@test.com", "admin123", domain.RoleAdmin)
	svc, _, _ := newUserService(t, admin)

	if _, err := svc.DeleteUser(context.Background(), &admin, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
