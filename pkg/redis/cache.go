package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSON cache helpers, used by the weather lookup to avoid hammering the
// external APIs for the same city.

// CacheJSON stores a value under key as JSON with the given TTL.
func CacheJSON(key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value failed: %w", err)
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// GetJSON loads a cached JSON value into out. Returns false on a miss.
func GetJSON(key string, out interface{}) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("redis client not initialized")
	}
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if IsNil(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		// poisoned entry, drop it
		_ = client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}
