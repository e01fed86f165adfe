package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRepo_Revoke(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	repo := NewRedisRepo(client)

	tokenID := uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, revokedKeyPrefix+tokenID) })

	revoked, err := repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, repo.Revoke(ctx, tokenID, time.Minute))

	revoked, err = repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, revokedKeyPrefix+tokenID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisRepo_RevokeExpiredToken(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	repo := NewRedisRepo(client)

	tokenID := uuid.NewString()
	require.NoError(t, repo.Revoke(ctx, tokenID, 0))

	revoked, err := repo.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRepo_IdempotencyKey(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	repo := NewRedisRepo(client)

	key := uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, idempotencyKeyPrefix+key) })

	ok, err := repo.ClaimIdempotencyKey(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ClaimIdempotencyKey(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second claim must be rejected")

	require.NoError(t, repo.ReleaseIdempotencyKey(ctx, key))

	ok, err = repo.ClaimIdempotencyKey(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
