package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		HTTPHost:   "localhost",
		HTTPPort:   8080,
		Seed:       42,
		MinDelayMs: 300,
		MaxDelayMs: 1000,
		ErrorRate:  0.1,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.HTTPPort = 0 }, true},
		{"port too large", func(c *Config) { c.HTTPPort = 70000 }, true},
		{"negative delay", func(c *Config) { c.MinDelayMs = -1 }, true},
		{"min above max", func(c *Config) { c.MinDelayMs = 2000 }, true},
		{"error rate above one", func(c *Config) { c.ErrorRate = 1.5 }, true},
		{"error rate negative", func(c *Config) { c.ErrorRate = -0.1 }, true},
		{"error rate one", func(c *Config) { c.ErrorRate = 1 }, false},
		{"zero delays", func(c *Config) { c.MinDelayMs = 0; c.MaxDelayMs = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.HTTPAddr())
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.EnableNetworkDelay)
	assert.False(t, cfg.EnableRandomErrors)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CABANA_HTTP_PORT", "9090")
	t.Setenv("CABANA_SEED", "7")
	t.Setenv("CABANA_ENABLE_RANDOM_ERRORS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.EnableRandomErrors)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("CABANA_ERROR_RATE", "2.0")
	_, err := Load()
	assert.Error(t, err)
}

func TestAPIConfig(t *testing.T) {
	cfg := validConfig()
	cfg.EnableNetworkDelay = true

	apiCfg := cfg.APIConfig()
	assert.True(t, apiCfg.EnableNetworkDelay)
	assert.Equal(t, 300, apiCfg.MinDelayMs)
	assert.Equal(t, 1000, apiCfg.MaxDelayMs)
	assert.InDelta(t, 0.1, apiCfg.ErrorRate, 1e-9)
}
