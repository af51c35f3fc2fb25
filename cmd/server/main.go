package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	_ "github.com/rbacdash/rbac-api/docs"
	"github.com/rbacdash/rbac-api/internal/api"
	"github.com/rbacdash/rbac-api/internal/api/handler"
	mongodb "github.com/rbacdash/rbac-api/internal/infrastructure/db/mongo"
	redisdb "github.com/rbacdash/rbac-api/internal/infrastructure/db/redis"
	"github.com/rbacdash/rbac-api/internal/infrastructure/store/jsonfile"
	"github.com/rbacdash/rbac-api/internal/infrastructure/store/memory"
	"github.com/rbacdash/rbac-api/internal/pkg/config"
	"github.com/rbacdash/rbac-api/pkg/logger"
)

// @title        RBAC Demo API
// @version      1.0
// @description  Role-based access control demo: JWT sessions, role/permission-gated endpoints, and a capped activity trail.
// @BasePath     /api
//
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()
	stores, checks := buildStores(ctx, cfg, log)

	e := api.NewRouter(api.Config{
		JWTSecret:      cfg.JWTSecret,
		JWTTTL:         cfg.JWTTTL,
		AllowedOrigins: cfg.AllowedOrigins,
	}, stores, log, checks)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("user_backend", cfg.Store.UserBackend).
		Str("activity_backend", cfg.Store.ActivityBackend).
		Msg("server starting")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// buildStores wires the repositories for the configured backends and the
// matching readiness checks.
func buildStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (api.Stores, []handler.DependencyCheck) {
	stores := api.Stores{
		Roles:    jsonfile.NewRoleRepository(cfg.Store.RolesFile()),
		Articles: memory.NewArticleRepository(memory.SeedArticles()),
	}

	checks := []handler.DependencyCheck{{
		Name: "data_dir",
		Check: func(context.Context) error {
			info, err := os.Stat(cfg.Store.DataDir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", cfg.Store.DataDir)
			}
			return nil
		},
	}}

	needMongo := cfg.Store.UserBackend == config.BackendMongo || cfg.Store.ActivityBackend == config.BackendMongo
	if needMongo {
		store, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		checks = append(checks, handler.DependencyCheck{Name: "mongodb", Check: store.Ping})
		if cfg.Store.UserBackend == config.BackendMongo {
			stores.Users = mongodb.NewUserRepository(store)
		}
		if cfg.Store.ActivityBackend == config.BackendMongo {
			stores.Activity = mongodb.NewActivityRepository(store)
		}
	}

	if cfg.Store.ActivityBackend == config.BackendRedis {
		client, err := redisdb.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		checks = append(checks, handler.DependencyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
		stores.Activity = redisdb.NewActivityRepository(client)
	}

	if stores.Users == nil {
		stores.Users = jsonfile.NewUserRepository(cfg.Store.UsersFile())
	}
	if stores.Activity == nil {
		stores.Activity = jsonfile.NewActivityRepository(cfg.Store.ActivityFile())
	}

	return stores, checks
}
