package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/janelia-scicomp/biblio/config"
	"github.com/janelia-scicomp/biblio/doi"
	"github.com/janelia-scicomp/biblio/identity"
	"github.com/janelia-scicomp/biblio/pubmed"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func doiClient(cfg *config.Config) *doi.Client {
	return doi.NewClient(cfg.CrossrefURL, cfg.DataCiteURL, nil)
}

// doiStore returns a Redis-backed record store, or nil when no Redis
// URL is configured.
func doiStore(cfg *config.Config) (doi.Store, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return doi.NewRedisStore(redis.NewClient(opts), 24*time.Hour), nil
}

// registry connects to the identity registry, running pending schema
// migrations first. Returns an error when no database is configured.
func registry(ctx context.Context, cfg *config.Config) (*identity.PostgresRegistry, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if err := identity.Migrate(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("migrating identity schema: %w", err)
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return identity.NewPostgresRegistry(pool), nil
}

func pubmedClient(cfg *config.Config) *pubmed.Client {
	return pubmed.NewClient(cfg.PubMedURL, nil)
}

func projectMap(cfg *config.Config) (identity.ProjectMap, error) {
	if cfg.ProjectsFile == "" {
		return nil, nil
	}
	return identity.LoadProjectMap(cfg.ProjectsFile)
}

func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
