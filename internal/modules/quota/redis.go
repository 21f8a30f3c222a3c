package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyTTL keeps stale daily keys from accumulating; the date in the key is
// what actually scopes a counter to its day.
const keyTTL = 48 * time.Hour

// RedisStore shares counters across instances via daily INCR keys.
type RedisStore struct {
	rdb   *redis.Client
	limit int
	now   func() time.Time
}

// NewRedisStore creates a Redis-backed store with the given daily limit.
func NewRedisStore(rdb *redis.Client, limit int) *RedisStore {
	return &RedisStore{rdb: rdb, limit: limit, now: time.Now}
}

func (s *RedisStore) key(identity string) string {
	return fmt.Sprintf("studypal:quota:%s:%s", s.now().Format(dateLayout), identity)
}

func (s *RedisStore) Allow(ctx context.Context, identity string) (bool, error) {
	key := s.key(identity)
	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		s.rdb.Expire(ctx, key, keyTTL)
	}
	if count > int64(s.limit) {
		// Undo the speculative increment so a denied check leaves no trace.
		s.rdb.Decr(ctx, key)
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) Remaining(ctx context.Context, identity string) (int, error) {
	count, err := s.rdb.Get(ctx, s.key(identity)).Int64()
	if err == redis.Nil {
		return s.limit, nil
	}
	if err != nil {
		return 0, err
	}
	remaining := s.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
