package cache

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/redis"
)

// NewLimiterStorage returns a fiber.Storage on the database after cfg.DB so
// rate limit counters do not mix with ledger keys. The storage pings on
// creation and panics when Redis is unreachable; call it only after NewClient
// succeeded.
func NewLimiterStorage(cfg Config) fiber.Storage {
	return redis.New(redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		Database: cfg.DB + 1,
		Reset:    false,
	})
}
