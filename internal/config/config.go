// Package config loads sandbox settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/cabanahq/sandbox/internal/api"
)

// EnvPrefix is the prefix for all sandbox environment variables, e.g.
// CABANA_HTTP_PORT.
const EnvPrefix = "CABANA"

// Config holds every runtime setting.
type Config struct {
	HTTPHost  string `envconfig:"HTTP_HOST" default:"localhost"`
	HTTPPort  int    `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false"`

	// Seed drives the demo fixture graph; the same seed always rebuilds the
	// same data.
	Seed int64 `envconfig:"SEED" default:"42"`

	// JWTSecret signs session tokens. The default is fine for a local
	// sandbox; anything reachable from another machine should set its own.
	JWTSecret string `envconfig:"JWT_SECRET" default:"cabana-sandbox-dev-secret"`

	EnableNetworkDelay bool    `envconfig:"ENABLE_NETWORK_DELAY" default:"true"`
	MinDelayMs         int     `envconfig:"MIN_DELAY_MS" default:"300"`
	MaxDelayMs         int     `envconfig:"MAX_DELAY_MS" default:"1000"`
	EnableRandomErrors bool    `envconfig:"ENABLE_RANDOM_ERRORS" default:"false"`
	ErrorRate          float64 `envconfig:"ERROR_RATE" default:"0.1"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return errors.Errorf("invalid HTTP port %d", c.HTTPPort)
	}
	if c.MinDelayMs < 0 || c.MaxDelayMs < 0 {
		return errors.New("delay bounds must be non-negative")
	}
	if c.MinDelayMs > c.MaxDelayMs {
		return errors.Errorf("min delay %dms exceeds max delay %dms", c.MinDelayMs, c.MaxDelayMs)
	}
	if c.ErrorRate < 0 || c.ErrorRate > 1 {
		return errors.Errorf("error rate %v outside [0, 1]", c.ErrorRate)
	}
	return nil
}

// HTTPAddr returns the host:port the server binds to.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// APIConfig converts the environment settings into the simulation config.
func (c *Config) APIConfig() api.Config {
	return api.Config{
		EnableNetworkDelay: c.EnableNetworkDelay,
		MinDelayMs:         c.MinDelayMs,
		MaxDelayMs:         c.MaxDelayMs,
		EnableRandomErrors: c.EnableRandomErrors,
		ErrorRate:          c.ErrorRate,
	}
}
