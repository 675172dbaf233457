package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/boldgroup/website/internal/pkg/cache"
	"github.com/boldgroup/website/internal/pkg/database"
	"github.com/boldgroup/website/internal/pkg/env"
)

const (
	STORE_MEMORY   = "memory"
	STORE_REDIS    = "redis"
	STORE_DATABASE = "database"
)

// Config selects and configures the payment ledger backend.
type Config struct {
	PaymentStore string
	Cache        cache.Config
	Database     database.Config
}

// ConfigFromEnv reads PAYMENT_STORE plus the cache and database settings.
func ConfigFromEnv() Config {
	return Config{
		PaymentStore: env.GetEnv("PAYMENT_STORE", STORE_MEMORY),
		Cache:        cache.ConfigFromEnv(),
		Database:     database.ConfigFromEnv(),
	}
}

// Factory builds the repositories once per process and owns the connections
// behind them until Close.
type Factory struct {
	cfg   Config
	repos *Repositories
	err   error
	once  sync.Once

	redisClient *redis.Client
	db          *gorm.DB
}

// NewFactory creates a new repository factory
func NewFactory(cfg Config) *Factory {
	return &Factory{cfg: cfg}
}

// GetRepositories connects the configured backend on first use and returns the
// same repositories afterwards.
func (f *Factory) GetRepositories(ctx context.Context) (*Repositories, error) {
	f.once.Do(func() {
		f.repos, f.err = f.build(ctx)
	})
	return f.repos, f.err
}

// GetPaymentRepository returns the payment repository instance
func (f *Factory) GetPaymentRepository(ctx context.Context) (PaymentRepository, error) {
	repos, err := f.GetRepositories(ctx)
	if err != nil {
		return nil, err
	}
	return repos.Payment, nil
}

func (f *Factory) build(ctx context.Context) (*Repositories, error) {
	switch f.cfg.PaymentStore {
	case STORE_MEMORY, "":
		return &Repositories{Payment: NewMemoryPaymentRepository()}, nil
	case STORE_REDIS:
		client, err := cache.NewClient(ctx, f.cfg.Cache)
		if err != nil {
			return nil, err
		}
		f.redisClient = client
		return &Repositories{Payment: NewRedisPaymentRepository(client)}, nil
	case STORE_DATABASE:
		db, err := database.SetupDatabase(f.cfg.Database)
		if err != nil {
			return nil, err
		}
		f.db = db
		return &Repositories{Payment: NewPaymentRepository(db)}, nil
	default:
		return nil, fmt.Errorf("unknown payment store %q", f.cfg.PaymentStore)
	}
}

// Close releases the connections opened by the factory.
func (f *Factory) Close() error {
	if f.redisClient != nil {
		if err := f.redisClient.Close(); err != nil {
			return err
		}
	}
	if f.db != nil {
		sqlDB, err := f.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
