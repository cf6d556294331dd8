package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ikkim/winecraft-backend/pkg/logger"
	redispkg "github.com/ikkim/winecraft-backend/pkg/redis"
	"github.com/redis/go-redis/v9"
)

type redisSnapshotRepository struct {
	client    *redis.Client
	namespace string
}

// NewRedisSnapshotRepository stores snapshots as plain string values under
// winecraft:<namespace>:<key> with the TTL applied by Redis.
func NewRedisSnapshotRepository(client *redis.Client, namespace string) SnapshotRepository {
	return &redisSnapshotRepository{client: client, namespace: namespace}
}

func (r *redisSnapshotRepository) key(key string) string {
	return redispkg.Key(r.namespace, key)
}

func (r *redisSnapshotRepository) Save(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		logger.Error("Failed to store snapshot in Redis", err, map[string]interface{}{
			"namespace": r.namespace,
			"key":       key,
		})
		return err
	}

	logger.Debug("Snapshot stored in Redis", map[string]interface{}{
		"namespace": r.namespace,
		"key":       key,
		"ttl":       ttl.String(),
	})
	return nil
}

func (r *redisSnapshotRepository) Find(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		logger.Error("Failed to read snapshot from Redis", err, map[string]interface{}{
			"namespace": r.namespace,
			"key":       key,
		})
		return nil, err
	}
	return data, nil
}

// Take uses GETDEL so a handoff can be claimed by one request only.
func (r *redisSnapshotRepository) Take(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.GetDel(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		logger.Error("Failed to take snapshot from Redis", err, map[string]interface{}{
			"namespace": r.namespace,
			"key":       key,
		})
		return nil, err
	}
	return data, nil
}
