package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/todoboard?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 4, cfg.QueueWorkers)
	assert.Equal(t, 20, cfg.DefaultPageSize)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/todoboard")
	t.Setenv("PORT", "9000")
	t.Setenv("QUEUE_WORKERS", "0")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("TASK_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	q := cfg.GetQueueConfig()
	assert.Equal(t, 0, q.Workers)
	assert.Equal(t, 2*time.Second, q.TaskTimeout)

	c := cfg.GetCacheConfig()
	assert.False(t, c.Enabled)
	assert.Equal(t, 30*time.Second, c.TTL)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/todoboard")
	t.Setenv("PORT", "not-a-number")
	t.Setenv("CACHE_TTL", "forever")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:     "development",
			Port:            8080,
			MetricsPort:     9090,
			DatabaseURL:     "postgres://db/todoboard",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			QueueWorkers:    2,
			QueueSize:       16,
			DefaultPageSize: 20,
			LogLevel:        "info",
			LogFormat:       "json",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing database url", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "DATABASE_URL"},
		{name: "production without secret", mutate: func(c *Config) { c.Environment = "production" }, wantErr: "JWT_SECRET"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "invalid port"},
		{name: "idle above open", mutate: func(c *Config) { c.MaxIdleConns = 50 }, wantErr: "max_open_conns"},
		{name: "negative workers", mutate: func(c *Config) { c.QueueWorkers = -1 }, wantErr: "queue workers"},
		{name: "zero page size", mutate: func(c *Config) { c.DefaultPageSize = 0 }, wantErr: "page size"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "log format"},
		{name: "tls without files", mutate: func(c *Config) { c.TLSEnabled = true }, wantErr: "TLS_CERT_FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
