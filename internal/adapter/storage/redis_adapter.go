package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const defaultSnapshotKey = "storeadmin:snapshot"

// RedisAdapter keeps the whole snapshot blob under a single key, the
// durable-storage shape the persistence bridge expects.
type RedisAdapter struct {
	client *redis.Client
	key    string
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client, key: defaultSnapshotKey}
}

func (r *RedisAdapter) Load(ctx context.Context) ([]byte, error) {
	blob, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (r *RedisAdapter) Save(ctx context.Context, blob []byte) error {
	return r.client.Set(ctx, r.key, blob, 0).Err()
}
