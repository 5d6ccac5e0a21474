package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	FixtureSourceFile  = "file"
	FixtureSourceMongo = "mongo"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	LogPretty       bool          `env:"LOG_PRETTY,       default=false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
	SentryDSN       string        `env:"SENTRY_DSN"`

	Auth     AuthConfig
	Fixtures FixturesConfig
	Mongo    MongoConfig
}

type AuthConfig struct {
	TokenTTL         time.Duration `env:"TOKEN_TTL,          default=15m"`
	MaxLoginAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=3"`
}

type FixturesConfig struct {
	// Source is "file" (JSON files in Dir) or "mongo".
	Source string `env:"FIXTURE_SOURCE, default=file"`
	Dir    string `env:"FIXTURE_DIR,    default=./initial-data"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Fixtures.Source {
	case FixtureSourceFile, FixtureSourceMongo:
	default:
		return fmt.Errorf("config: FIXTURE_SOURCE must be %q or %q, got %q",
			FixtureSourceFile, FixtureSourceMongo, c.Fixtures.Source)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive")
	}
	return nil
}
