package database

import (
	"fmt"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/boldgroup/website/app/models"
	"github.com/boldgroup/website/internal/pkg/env"
)

const (
	DRIVER_MYSQL    = "mysql"
	DRIVER_POSTGRES = "postgres"
	DRIVER_SQLITE   = "sqlite"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// Config holds the connection settings of the durable payment ledger.
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func ConfigFromEnv() Config {
	driver := env.GetEnv("DB_DRIVER", DRIVER_MYSQL)
	defaultPort := "3306"
	if driver == DRIVER_POSTGRES {
		defaultPort = "5432"
	}
	return Config{
		Driver:   driver,
		Host:     env.GetEnv("DB_HOST", "127.0.0.1"),
		Port:     env.GetEnv("DB_PORT", defaultPort),
		User:     env.GetEnv("DB_USER", ""),
		Password: env.GetEnv("DB_PASSWORD", ""),
		Name:     env.GetEnv("DB_NAME", "boldgroup"),
	}
}

// Dialector builds the gorm dialector for the configured driver. For sqlite,
// Name is the database file path.
func (c Config) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DRIVER_MYSQL:
		// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.Name)
		return mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			SkipInitializeWithVersion: false,
		}), nil
	case DRIVER_POSTGRES:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.Host, c.User, c.Password, c.Name, c.Port)
		return postgres.Open(dsn), nil
	case DRIVER_SQLITE:
		return sqlite.Open(c.Name), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// SetupDatabase opens the connection, retrying while the server comes up, and
// migrates the payments table.
func SetupDatabase(cfg Config) (*gorm.DB, error) {
	dialector, err := cfg.Dialector()
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{}
	if !env.IsDev() {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	var db *gorm.DB
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			if err = db.AutoMigrate(&models.Payment{}); err != nil {
				return nil, fmt.Errorf("migrate payments: %w", err)
			}
			return db, nil
		}

		fiberlog.Warnf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("connect to %s database: %w", cfg.Driver, err)
}
