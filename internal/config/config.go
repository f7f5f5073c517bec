package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config is the server configuration, read from the environment.
type Config struct {
	HTTPPort     string `env:"PORT" envDefault:"8080"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"redis"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DB" envDefault:"cleaningparty"`

	// Abandoned games expire from the store after this long.
	GameTTL time.Duration `env:"GAME_TTL" envDefault:"24h"`

	// OptimisticLock turns the Redis backend's updates into bounded
	// compare-and-swap retries instead of last-write-wins.
	OptimisticLock bool `env:"OPTIMISTIC_LOCK" envDefault:"false"`
	UpdateRetries  int  `env:"UPDATE_RETRIES" envDefault:"5"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.StoreBackend {
	case BackendRedis, BackendMongo, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return cfg, nil
}
