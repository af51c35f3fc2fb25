package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

// UserService implements profile self-service and admin user management.
// Mutations read the full user list, modify it in place, and write it back
// through the repository's bulk Save (last writer wins, no locking).
type UserService struct {
	users    ports.UserRepository
	activity ports.ActivityService
	clock    Clock
}

func NewUserService(users ports.UserRepository, activity ports.ActivityService, clock Clock) *UserService {
	if clock == nil {
		clock = systemClock{}
	}
	return &UserService{users: users, activity: activity, clock: clock}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	idx := indexByID(users, userID)
	if idx < 0 {
		return nil, domain.ErrUserNotFound
	}
	user := &users[idx]

	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, domain.ErrCurrentPasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update profile: hash password: %w", err)
		}
		user.Password = string(hash)
		s.activity.Record(ctx, user.ID, user.Name, domain.ActionPasswordChange, map[string]any{
			"email": user.Email,
		})
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	user.UpdatedAt = s.clock.Now().UTC()

	if err := s.users.Save(ctx, users); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.activity.Record(ctx, user.ID, user.Name, domain.ActionUpdateProfile, map[string]any{
		"email": user.Email,
	})

	updated := *user
	return &updated, nil
}

func (s *UserService) UpdateUser(ctx context.Context, actor *domain.User, userID string, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Roles != nil && len(in.Roles) == 0 {
		return nil, domain.ErrEmptyRoles
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	idx := indexByID(users, userID)
	if idx < 0 {
		return nil, domain.ErrUserNotFound
	}
	user := &users[idx]

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Roles != nil {
		user.Roles = in.Roles
	}
	user.UpdatedAt = s.clock.Now().UTC()

	if err := s.users.Save(ctx, users); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.activity.Record(ctx, actor.ID, actor.Name, domain.ActionUpdateUser, map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"roles":   user.Roles,
	})

	updated := *user
	return &updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, actor *domain.User, userID string) (*domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	idx := indexByID(users, userID)
	if idx < 0 {
		return nil, domain.ErrUserNotFound
	}
	deleted := users[idx]

	remaining := append(users[:idx:idx], users[idx+1:]...)
	if err := s.users.Save(ctx, remaining); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	// Activity entries referencing the deleted id persist in the trail.
	s.activity.Record(ctx, actor.ID, actor.Name, domain.ActionDeleteUser, map[string]any{
		"user_id": deleted.ID,
		"email":   deleted.Email,
	})

	return &deleted, nil
}

func indexByID(users []domain.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}
