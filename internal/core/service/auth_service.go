package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

// AuthService implements signup and login against the credential store.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	activity ports.ActivityService
	clock    Clock
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, activity ports.ActivityService, clock Clock) *AuthService {
	if clock == nil {
		clock = systemClock{}
	}
	return &AuthService{users: users, tokens: tokens, activity: activity, clock: clock}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string, roles []string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("signup: %w", err)
	}
	if existing != nil {
		return nil, "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("signup: hash password: %w", err)
	}

	if len(roles) == 0 {
		roles = append([]string(nil), domain.DefaultRoles...)
	}

	now := s.clock.Now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Roles:     roles,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.Roles)
	if err != nil {
		return nil, "", fmt.Errorf("signup: issue token: %w", err)
	}

	s.activity.Record(ctx, created.ID, created.Name, domain.ActionUserSignup, map[string]any{
		"email": created.Email,
		"roles": created.Roles,
	})

	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email reads the same as a wrong password to the caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, "", fmt.Errorf("login: issue token: %w", err)
	}

	s.activity.Record(ctx, user.ID, user.Name, domain.ActionUserLogin, map[string]any{
		"email": user.Email,
	})

	return user, token, nil
}
