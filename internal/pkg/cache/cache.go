package cache

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/boldgroup/website/internal/pkg/env"
)

// Config describes how to reach the Redis (or Dragonfly) server.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ConfigFromEnv reads CACHE_HOST, CACHE_PORT, CACHE_PASSWORD and CACHE_DB.
func ConfigFromEnv() Config {
	return Config{
		Host:     env.GetEnv("CACHE_HOST", "localhost"),
		Port:     env.GetEnvInt("CACHE_PORT", 6379),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       env.GetEnvInt("CACHE_DB", 0),
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	pong, err := client.Ping(pingCtx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to cache at %s: %w", cfg.Addr(), err)
	}
	fiberlog.Infof("Successfully connected to cache: %s", pong)

	return client, nil
}
