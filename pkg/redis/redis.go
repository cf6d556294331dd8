package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ikkim/winecraft-backend/config"
	"github.com/ikkim/winecraft-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "winecraft"

var client *redis.Client

// Init opens the shared Redis connection and verifies it with a PING.
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	c, err := Connect(context.Background(), fmt.Sprintf("%s:%s", cfg.Host, cfg.Port), cfg.Password, cfg.DB)
	if err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return err
	}
	client = c

	logger.Info("Redis connection established successfully")
	return nil
}

// Connect dials addr and pings it within five seconds.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return c, nil
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection")
		err := client.Close()
		client = nil
		return err
	}
	return nil
}

// Key joins parts under KeyPrefix, e.g. Key("handoff", token).
func Key(parts ...string) string {
	return KeyPrefix + ":" + strings.Join(parts, ":")
}
