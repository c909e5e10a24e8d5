package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// dropCacheKeys removes every key matching the given patterns. A nil
// client and lookup failures are both tolerated: the cache is an
// optimization, never a correctness dependency.
func dropCacheKeys(ctx context.Context, client *redis.Client, patterns ...string) {
	if client == nil {
		return
	}
	for _, pattern := range patterns {
		if !strings.ContainsRune(pattern, '*') {
			_ = client.Del(ctx, pattern).Err()
			continue
		}
		keys, err := client.Keys(ctx, pattern).Result()
		if err != nil || len(keys) == 0 {
			continue
		}
		_ = client.Del(ctx, keys...).Err()
	}
}
