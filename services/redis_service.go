package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetFromRedis loads a cached JSON value into target. The boolean reports
// whether the key existed, so an empty cached list still counts as a hit.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// SetToRedis stores a value as JSON with a TTL
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis drops a cache key
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}
