package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"
	"time" // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// TTL is how long cached wallet and history responses live.
const TTL = 60 * time.Second

// historyPages is how many leading history pages get invalidated after a
// mutation. Matches the page sizes the API hands out by default.
const historyPages = 5

// Cache is a thin JSON cache over Redis. A nil Cache is valid and caches
// nothing, so callers never branch on whether Redis is configured.
type Cache struct {
	rdb *redis.Client
}

// New wraps a Redis client. Pass nil to disable caching.
func New(rdb *redis.Client) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb}
}

// WalletKey is the cache key for a user's wallet view
func WalletKey(userID uint) string {
	return "wallet:user:" + strconv.Itoa(int(userID))
}

// HistoryKey is the cache key for one page of a user's transaction history
func HistoryKey(userID uint, page, pageSize int) string {
	return "txhistory:user:" + strconv.Itoa(int(userID)) +
		":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
}

// Get retrieves a value and unmarshals it into dest. The bool reports
// whether the key existed.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set stores a value as JSON with the standard TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, TTL).Err()
}

// InvalidateUser drops the user's wallet view and leading history pages
// after a balance mutation.
func (c *Cache) InvalidateUser(ctx context.Context, userID uint) {
	if c == nil {
		return
	}
	keys := []string{WalletKey(userID)}
	for page := 1; page <= historyPages; page++ {
		keys = append(keys, HistoryKey(userID, page, 20))
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
