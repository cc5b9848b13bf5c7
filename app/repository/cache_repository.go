package repository

import (
	"time"

	"github.com/codevine/trainhub/internal/pkg/cache"
)

// cacheRepository implements the CacheRepository interface
type cacheRepository struct {
	// Operates on Redis rather than GORM; used by the developer panel.
}

// NewCacheRepository creates a new cache repository instance
func NewCacheRepository() CacheRepository {
	return &cacheRepository{}
}

// GetAllKeys retrieves all keys from the Redis cache
func (r *cacheRepository) GetAllKeys() ([]string, error) {
	return cache.Keys("*")
}

// GetValue retrieves a value for a specific key
func (r *cacheRepository) GetValue(key string) (string, error) {
	return cache.Get(key)
}

// GetTTL retrieves the time-to-live for a specific key
func (r *cacheRepository) GetTTL(key string) (time.Duration, error) {
	return cache.TTL(key)
}

// DeleteKey deletes a specific key from the cache
func (r *cacheRepository) DeleteKey(key string) error {
	return cache.Delete(key)
}
