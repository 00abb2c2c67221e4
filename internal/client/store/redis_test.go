package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server only when EMERGENCY15_TEST_REDIS_ADDR is set.
func newTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("EMERGENCY15_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("EMERGENCY15_TEST_REDIS_ADDR not set")
	}

	prefix := "emergency15-test:" + uuid.NewString() + ":"
	s, err := OpenRedis(context.Background(), addr, "", 0, prefix)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Clear(context.Background())
		_ = s.Close()
	})
	return s
}

func TestRedisStore_RoundTrip(t *testing.T) {
	s := newTestRedis(t)
	ctx := context.Background()

	_, ok, err := s.GetString(ctx, "@authdata")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "@authdata", `{"token":"t"}`))
	v, ok, err := s.GetString(ctx, "@authdata")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"token":"t"}`, v)

	require.NoError(t, s.Delete(ctx, "@authdata"))
	require.NoError(t, s.Delete(ctx, "@authdata"))
	_, ok, err = s.GetString(ctx, "@authdata")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisStore_ListAndClearStayInPrefix(t *testing.T) {
	s := newTestRedis(t)
	other := NewRedisStore(s.rdb, s.prefix+"other:")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, other.Set(ctx, "b", "2"))
	t.Cleanup(func() { _ = other.Delete(context.Background(), "b") })

	require.NoError(t, other.Clear(ctx))

	v, ok, err := s.GetString(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", v)

	l, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1"}, l)
}

func TestOpenRedis_Unreachable(t *testing.T) {
	_, err := OpenRedis(context.Background(), "127.0.0.1:1", "", 0, "p:")
	require.Error(t, err)
}
