// Command seed populates the JSON data files with the demo role mapping and
// a set of test users, overwriting any existing user file.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/infrastructure/store/jsonfile"
	"github.com/rbacdash/rbac-api/internal/pkg/config"
	"github.com/rbacdash/rbac-api/pkg/logger"
)

var roleMapping = map[string][]string{
	domain.RoleAdmin:  {domain.PermReadArticles, domain.PermWriteArticles, domain.PermDeleteArticles},
	domain.RoleEditor: {domain.PermReadArticles, domain.PermWriteArticles},
	domain.RoleViewer: {domain.PermReadArticles},
}

type seedUser struct {
	name     string
	email    string
	password string
	roles    []string
}

var seedUsers = []seedUser{
	{"Admin User", "admin@test.com", "admin123", []string{domain.RoleAdmin}},
	{"Editor User", "editor@test.com", "editor123", []string{domain.RoleEditor}},
	{"Viewer User", "viewer@test.com", "viewer123", []string{domain.RoleViewer}},
	{"Multi Role User", "multi@test.com", "multi123", []string{domain.RoleEditor, domain.RoleViewer}},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create data directory")
	}

	now := time.Now().UTC()
	users := make([]domain.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("failed to hash password")
		}
		users = append(users, domain.User{
			ID:        uuid.NewString(),
			Name:      su.name,
			Email:     su.email,
			Password:  string(hash),
			Roles:     su.roles,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	repo := jsonfile.NewUserRepository(cfg.Store.UsersFile())
	if err := repo.Save(context.Background(), users); err != nil {
		log.Fatal().Err(err).Msg("failed to write user store")
	}

	if err := writeFile(cfg.Store.RolesFile(), roleMapping); err != nil {
		log.Fatal().Err(err).Msg("failed to write role mapping")
	}

	// Start the activity log empty unless one already exists.
	if _, err := os.Stat(cfg.Store.ActivityFile()); os.IsNotExist(err) {
		if err := writeFile(cfg.Store.ActivityFile(), []any{}); err != nil {
			log.Fatal().Err(err).Msg("failed to write activity log")
		}
	}

	log.Info().Int("users", len(users)).Msg("database seeded")
	for _, su := range seedUsers {
		log.Info().Str("email", su.email).Str("password", su.password).Strs("roles", su.roles).Msg("test user")
	}
}

func writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
