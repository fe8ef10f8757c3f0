package usage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyGuestUsage = "usage:guest:%s:%s" // guest id, UTC date

	// keys outlive their day so a late read still finds them
	guestKeyTTL = 48 * time.Hour
)

// RedisCounter keeps guest counters; guests have no database row to count against.
type RedisCounter struct {
	client redis.Cmdable
	now    func() time.Time
}

func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client, now: time.Now}
}

func (r *RedisCounter) key(guestID string) string {
	return fmt.Sprintf(keyGuestUsage, guestID, r.now().UTC().Format(time.DateOnly))
}

func (r *RedisCounter) Increment(ctx context.Context, guestID string, by int) error {
	key := r.key(guestID)

	pipe := r.client.TxPipeline()
	pipe.IncrBy(ctx, key, int64(by))
	pipe.Expire(ctx, key, guestKeyTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment guest usage in redis: %w", err)
	}

	return nil
}

func (r *RedisCounter) Today(ctx context.Context, guestID string) (int, error) {
	count, err := r.client.Get(ctx, r.key(guestID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get guest usage from redis: %w", err)
	}

	return count, nil
}
