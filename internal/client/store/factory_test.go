package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/emergency15/internal/client/config"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	ctx := context.Background()

	b, err := FromConfig(ctx, &config.Config{StoreDriver: config.StoreDriverMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, b)

	b, err = FromConfig(ctx, &config.Config{
		StoreDriver: config.StoreDriverSQLite,
		StorePath:   filepath.Join(t.TempDir(), "nested", "x.db"),
	})
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, b)
	require.NoError(t, b.Close())

	_, err = FromConfig(ctx, &config.Config{StoreDriver: "bolt"})
	require.Error(t, err)
}
