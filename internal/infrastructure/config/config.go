package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every bearer token. Startup fails without it; there
	// is deliberately no default.
	JWTSecret string `env:"JWT_SECRET, required"`

	// HashWorkers bounds concurrent bcrypt computations.
	HashWorkers int `env:"HASH_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gamevault"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT_SECRET is a startup error, never a silent default.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// The required tag only catches an unset variable; an empty
	// JWT_SECRET= would otherwise sign every token with an empty key.
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must not be empty")
	}
	return &cfg, nil
}
