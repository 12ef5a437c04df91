package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*miniredis.Miniredis, redisrepo.Repository) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return srv, redisrepo.NewRepository(client)
}

func TestRepository_KeyValue(t *testing.T) {
	srv, repo := newRepo(t)
	ctx := context.Background()

	val, err := repo.Get(ctx, "idempotency:missing")
	require.NoError(t, err)
	assert.Empty(t, val)

	ok, err := repo.SetNX(ctx, "idempotency:k1", "pending", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetNX(ctx, "idempotency:k1", "pending", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetWithTTL(ctx, "idempotency:k1", `{"id":"o-1"}`, time.Hour))
	val, err = repo.Get(ctx, "idempotency:k1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"o-1"}`, val)
	assert.Equal(t, time.Hour, srv.TTL("idempotency:k1"))

	srv.FastForward(2 * time.Hour)
	val, err = repo.Get(ctx, "idempotency:k1")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repo.SetWithTTL(ctx, "cart:c1", "{}", time.Hour))
	require.NoError(t, repo.Delete(ctx, "cart:c1"))
	assert.False(t, srv.Exists("cart:c1"))
}

func TestRepository_Session(t *testing.T) {
	srv, repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "jti-1", 42, time.Hour))
	assert.True(t, srv.Exists("session:jti-1"))

	userID, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)

	require.NoError(t, repo.DeleteSession(ctx, "jti-1"))
	_, err = repo.GetSession(ctx, "jti-1")
	assert.ErrorIs(t, err, goredis.Nil)
}

func TestRepository_AllowRequest(t *testing.T) {
	_, repo := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := repo.AllowRequest(ctx, "ratelimit:contact:10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := repo.AllowRequest(ctx, "ratelimit:contact:10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.AllowRequest(ctx, "ratelimit:contact:10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_NilClient(t *testing.T) {
	repo := redisrepo.NewRepository(nil)
	ctx := context.Background()

	val, err := repo.Get(ctx, "any")
	assert.NoError(t, err)
	assert.Empty(t, val)

	ok, err := repo.SetNX(ctx, "any", "v", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AllowRequest(ctx, "any", 1, time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetSession(ctx, "any")
	assert.ErrorIs(t, err, goredis.Nil)

	assert.NoError(t, repo.SetWithTTL(ctx, "any", "v", time.Minute))
	assert.NoError(t, repo.Delete(ctx, "any"))
}
