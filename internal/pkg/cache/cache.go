package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codevine/trainhub/internal/pkg/env"
	"github.com/codevine/trainhub/internal/pkg/logging"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// SetupCache initializes the connection to the Redis cache server
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Test the connection
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		logging.Log.Warnf("could not connect to Redis cache: %v", err)
	} else {
		logging.Log.Infof("connected to Redis cache: %s", pong)
	}
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// SetClient overrides the client; used by tests with miniature servers.
func SetClient(c *redis.Client) {
	client = c
}

// Set stores a value in the cache with the given key and expiration time
func Set(key string, value interface{}, expiration time.Duration) error {
	return GetClient().Set(ctx, key, value, expiration).Err()
}

// SetMulti stores several key/value pairs with a shared expiration in one
// pipeline, so readers never observe a partially written group.
func SetMulti(pairs map[string]string, expiration time.Duration) error {
	if len(pairs) == 0 {
		return nil
	}
	pipe := GetClient().TxPipeline()
	for key, value := range pairs {
		pipe.Set(ctx, key, value, expiration)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Get retrieves a value from the cache by key
func Get(key string) (string, error) {
	return GetClient().Get(ctx, key).Result()
}

// Delete removes one or more keys from the cache. Deleting a key that does
// not exist is not an error.
func Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return GetClient().Del(ctx, keys...).Err()
}

// Keys lists all cache keys matching the given pattern.
func Keys(pattern string) ([]string, error) {
	return GetClient().Keys(ctx, pattern).Result()
}

// TTL returns the remaining time-to-live of a key.
func TTL(key string) (time.Duration, error) {
	return GetClient().TTL(ctx, key).Result()
}
