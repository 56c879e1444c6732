package infra_redis_ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis"
)

type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

// Incr bumps the fixed-window counter for key and returns the new count.
// The window TTL is attached on the first hit only, so the counter resets
// as a whole rather than sliding.
func (d *Driver) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := d.getFullKey(key)

	n, err := d.client.Incr(fullKey).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := d.client.Expire(fullKey, window).Err(); err != nil {
			return 0, err
		}
	}

	return n, nil
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
