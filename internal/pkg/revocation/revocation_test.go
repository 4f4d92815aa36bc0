package revocation

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRedis *redis.Client

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker is not available, redis tests will be skipped: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.Run("redis", "7-alpine", nil)
	if err != nil {
		log.Printf("could not start redis, redis tests will be skipped: %v", err)
		os.Exit(m.Run())
	}
	_ = resource.Expire(120)

	err = pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{
			Addr: resource.GetHostPort("6379/tcp"),
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return err
		}
		testRedis = client
		return nil
	})
	if err != nil {
		log.Printf("could not connect to redis: %v", err)
	}

	code := m.Run()

	if testRedis != nil {
		_ = testRedis.Close()
	}
	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge redis: %v", err)
	}

	os.Exit(code)
}

func TestMemoryList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	l := NewMemoryList()
	l.now = func() time.Time { return now }

	revoked, err := l.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, l.Revoke(ctx, "a", now.Add(time.Hour)))
	require.NoError(t, l.Revoke(ctx, "stale", now.Add(-time.Second)))

	revoked, err = l.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = l.IsRevoked(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, err = l.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, l.revoked)
}

func TestMemoryList_PrunesOnRevoke(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	l := NewMemoryList()
	l.now = func() time.Time { return now }

	require.NoError(t, l.Revoke(ctx, "a", now.Add(time.Minute)))
	now = now.Add(time.Hour)
	require.NoError(t, l.Revoke(ctx, "b", now.Add(time.Minute)))

	assert.Len(t, l.revoked, 1)
	assert.Contains(t, l.revoked, "b")
}

func TestRedisList(t *testing.T) {
	if testRedis == nil {
		t.Skip("redis is not available")
	}
	ctx := context.Background()

	l := NewRedisList(testRedis)

	revoked, err := l.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, l.Revoke(ctx, "token-1", time.Now().Add(time.Minute)))

	revoked, err = l.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := testRedis.TTL(ctx, keyPrefix+"token-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, l.Revoke(ctx, "token-2", time.Now().Add(-time.Minute)))
	revoked, err = l.IsRevoked(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
