package infra_movie_cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"github.com/travisksimons/vibe-check-movies/internal/model"
)

type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Get(ctx context.Context, id int64) (*model.MovieDetails, error) {
	fullKey := d.getFullKey(id)

	raw, err := d.client.Get(fullKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var details model.MovieDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		// An unreadable entry counts as a miss.
		return nil, nil
	}

	return &details, nil
}

func (d *Driver) Set(ctx context.Context, details model.MovieDetails) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}

	fullKey := d.getFullKey(details.ID)
	if err := d.client.Set(fullKey, string(raw), d.ttl).Err(); err != nil {
		return err
	}

	return nil
}

func (d *Driver) getFullKey(id int64) string {
	key := strconv.FormatInt(id, 10)
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
