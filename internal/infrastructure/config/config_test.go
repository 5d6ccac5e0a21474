package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 3, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, FixtureSourceFile, cfg.Fixtures.Source)
	assert.Equal(t, "./initial-data", cfg.Fixtures.Dir)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":               "3001",
		"FIXTURE_SOURCE":     "mongo",
		"MONGO_DB":           "shop",
		"TOKEN_TTL":          "30m",
		"LOGIN_MAX_ATTEMPTS": "5",
		"LOG_PRETTY":         "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, FixtureSourceMongo, cfg.Fixtures.Source)
	assert.Equal(t, "shop", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.True(t, cfg.LogPretty)
}

func TestLoadWith_RejectsUnknownFixtureSource(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"FIXTURE_SOURCE": "s3",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIXTURE_SOURCE")
}
