package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/emergency15/internal/client/config"
	"github.com/dmitrijs2005/emergency15/internal/filex"
)

// Lister is implemented by every backend in this package.
type Lister interface {
	List(ctx context.Context) (map[string]string, error)
}

// FromConfig opens the backend selected by cfg.StoreDriver.
func FromConfig(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite, "":
		if err := filex.EnsureParentDir(cfg.StorePath); err != nil {
			return nil, err
		}
		return Open(ctx, cfg.StorePath)
	case config.StoreDriverRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
	case config.StoreDriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
