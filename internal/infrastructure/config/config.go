package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings, loaded from the environment. The
// JWT_SECRET and ADMIN_KEY defaults are insecure and exist only so the
// service starts out of the box; any real deployment must override them.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret       string `env:"JWT_SECRET,        default=super-secret-key"`
	AdminKey        string `env:"ADMIN_KEY,         default=admin123"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=1440"`

	// StoreBackend selects the persistence implementation: "mongo" or
	// "memory". The memory backend keeps all state in process.
	StoreBackend string `env:"STORE_BACKEND, default=mongo"`

	// CORSOrigins is a comma-separated list of allowed frontend origins.
	CORSOrigins string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sweetshop"`
}

// IsProduction reports whether the service runs with production settings.
// In production an unreachable Mongo is a startup failure instead of a
// silent fallback to the memory backend.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
