package factory

import (
	"context"
	"fmt"

	"github.com/quicktix/quicktix/internal/storage"
	"github.com/quicktix/quicktix/internal/storage/es"
	"github.com/quicktix/quicktix/internal/storage/inmem"
	"github.com/quicktix/quicktix/internal/storage/pg"
)

// NewRepository creates a storage.Repository for the configured backend.
func NewRepository(ctx context.Context, cfg StorageConfig) (storage.Repository, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewRepository(pool), nil

	case storage.ES:
		return es.NewRepository(ctx, *cfg.Es)

	case storage.InMem:
		return inmem.NewRepository(), nil

	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedRepository, cfg.Type)
	}
}
