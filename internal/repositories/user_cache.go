package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-tweeter/internal/logger"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
)

const userKeyPrefix = "user:"

// UserCacheRepository caches user profiles in Redis.
// The password hash is never written to the cache.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached profiles
}

// NewUserCacheRepository creates a new cache repository with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached profile for username, or nil on a miss.
func (r *UserCacheRepository) Get(ctx context.Context, username string) (*models.UserDB, error) {
	key := userKeyPrefix + username

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("cache read failed", "key", key, "error", err)
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Errorw("cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &user, nil
}

// Set caches the profile of user.
func (r *UserCacheRepository) Set(ctx context.Context, user models.UserDB) error {
	key := userKeyPrefix + user.Username

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
