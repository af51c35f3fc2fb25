// Package mongo implements the optional MongoDB backends for the user and
// activity stores, selected with USER_BACKEND=mongo / ACTIVITY_BACKEND=mongo.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rbacdash/rbac-api/internal/pkg/config"
)

const defaultTimeout = 10 * time.Second

// Store is the connected deployment handle. It hands collections to the
// repositories and doubles as their readiness probe.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the deployment named by the MONGO_* settings and verifies
// connectivity with a ping inside the configured timeout.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Ping reports whether the deployment is reachable. Wired into the
// readiness endpoint whenever a mongo backend is enabled.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Disconnect closes the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
