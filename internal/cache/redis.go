package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent or the cache
// is disabled.
var ErrCacheMiss = errors.New("cache miss")

// RedisCache holds JSON-serialized catalog payloads. Seat occupancy is
// deliberately never stored here: availability is recomputed from the
// ticket store on every request.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache connects to redis at url. An empty url yields a nil
// cache, on which every Get misses and every Set is a no-op.
func NewRedisCache(url string) (*RedisCache, error) {
	if url == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     url,
		Password: "",
		DB:       0,
	})
	return &RedisCache{Client: client}, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if r == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) error {
	if r == nil {
		return ErrCacheMiss
	}
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if r == nil || len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	if r == nil {
		return nil
	}
	return r.Client.Close()
}
