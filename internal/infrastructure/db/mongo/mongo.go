package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultDatabase = "property_portal"
	defaultTimeout  = 10 * time.Second
)

// Config captures the settings for connecting to the portal database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (cfg Config) withDefaults() Config {
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

// Store bundles the connected client with the portal database so callers run
// index setup and teardown against a single handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB client behind the portal repositories and
// verifies connectivity with a ping. A zero-value Database or Timeout falls
// back to the portal defaults.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	cfg = cfg.withDefaults()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
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

// Database exposes the underlying handle for repository construction.
func (s *Store) Database() *mongo.Database { return s.db }

// EnsureIndexes creates every index the portal relies on: the unique email
// index behind duplicate-registration detection and the owner, status, and
// price indexes behind listing queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if err := NewUserRepository(s.db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := NewPropertyRepository(s.db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("property indexes: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
