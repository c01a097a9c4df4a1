package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestUserCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewUserCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get profile", func(t *testing.T) {
		user := newUser("alice1")
		user.CreatedAt = user.CreatedAt.Truncate(time.Second)

		require.NoError(t, repo.Set(ctx, user))

		got, err := repo.Get(ctx, "alice1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.Username, got.Username)
		assert.Equal(t, user.Name, got.Name)
		assert.Equal(t, user.Email, got.Email)
		assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("Password hash is not cached", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, newUser("bobby1")))

		raw, err := rdb.Get(ctx, userKeyPrefix+"bobby1").Result()
		require.NoError(t, err)
		assert.NotContains(t, raw, "hash-bobby1")

		got, err := repo.Get(ctx, "bobby1")
		require.NoError(t, err)
		assert.Empty(t, got.PasswordHash)
	})

	t.Run("Miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupt entry returns error", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, userKeyPrefix+"broken", "{not json", 0).Err())

		_, err := repo.Get(ctx, "broken")
		assert.Error(t, err)
	})

	t.Run("Cached profile expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, newUser("carol1")))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, "carol1")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
