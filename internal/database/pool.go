package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nhalm/pgxkit"
)

type PoolConfig struct {
	MinConns int
	MaxConns int
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{MinConns: 5, MaxConns: 10}
}

func (c PoolConfig) Validate() error {
	if c.MaxConns < 1 {
		return fmt.Errorf("max pool size must be at least 1, got %d", c.MaxConns)
	}
	if c.MinConns < 0 || c.MinConns > c.MaxConns {
		return fmt.Errorf("min pool size must be between 0 and %d, got %d", c.MaxConns, c.MinConns)
	}
	return nil
}

// WithPoolSize sets pool_min_conns and pool_max_conns on a connection string,
// which pgxpool reads when parsing its config. Both URL and keyword/value
// forms are accepted.
func WithPoolSize(databaseURL string, cfg PoolConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	minConns := strconv.Itoa(cfg.MinConns)
	maxConns := strconv.Itoa(cfg.MaxConns)

	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		u, err := url.Parse(databaseURL)
		if err != nil {
			return "", fmt.Errorf("parse database url: %w", err)
		}
		q := u.Query()
		q.Set("pool_min_conns", minConns)
		q.Set("pool_max_conns", maxConns)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	var kept []string
	for _, field := range strings.Fields(databaseURL) {
		if strings.HasPrefix(field, "pool_min_conns=") || strings.HasPrefix(field, "pool_max_conns=") {
			continue
		}
		kept = append(kept, field)
	}
	kept = append(kept, "pool_min_conns="+minConns, "pool_max_conns="+maxConns)
	return strings.Join(kept, " "), nil
}

// Connect opens the shared, bounded connection pool.
func Connect(ctx context.Context, databaseURL string, cfg PoolConfig) (*pgxkit.DB, error) {
	dsn, err := WithPoolSize(databaseURL, cfg)
	if err != nil {
		return nil, err
	}

	db := pgxkit.NewDB()
	if err := db.Connect(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
