// Package api is the mock backend surface: every operation runs through a
// configurable simulation gate (latency, injected transient errors) and
// returns a uniform response envelope, backed by the in-memory store.
package api

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cabanahq/sandbox/internal/random"
	"github.com/cabanahq/sandbox/internal/store"
)

// Config controls the simulation gate. Delays and error injection apply
// uniformly to every operation.
type Config struct {
	EnableNetworkDelay bool    `json:"enableNetworkDelay"`
	MinDelayMs         int     `json:"minDelayMs"`
	MaxDelayMs         int     `json:"maxDelayMs"`
	EnableRandomErrors bool    `json:"enableRandomErrors"`
	ErrorRate          float64 `json:"errorRate"`
}

// DefaultConfig returns the out-of-the-box simulation settings: realistic
// latency on, error injection off.
func DefaultConfig() Config {
	return Config{
		EnableNetworkDelay: true,
		MinDelayMs:         300,
		MaxDelayMs:         1000,
		EnableRandomErrors: false,
		ErrorRate:          0.1,
	}
}

// ConfigPatch is a partial update for Config; nil fields are left alone.
type ConfigPatch struct {
	EnableNetworkDelay *bool    `json:"enableNetworkDelay"`
	MinDelayMs         *int     `json:"minDelayMs"`
	MaxDelayMs         *int     `json:"maxDelayMs"`
	EnableRandomErrors *bool    `json:"enableRandomErrors"`
	ErrorRate          *float64 `json:"errorRate"`
}

// Apply merges the patch into c.
func (p *ConfigPatch) Apply(c *Config) {
	if p == nil {
		return
	}
	if p.EnableNetworkDelay != nil {
		c.EnableNetworkDelay = *p.EnableNetworkDelay
	}
	if p.MinDelayMs != nil {
		c.MinDelayMs = *p.MinDelayMs
	}
	if p.MaxDelayMs != nil {
		c.MaxDelayMs = *p.MaxDelayMs
	}
	if p.EnableRandomErrors != nil {
		c.EnableRandomErrors = *p.EnableRandomErrors
	}
	if p.ErrorRate != nil {
		c.ErrorRate = *p.ErrorRate
	}
}

// Response is the uniform envelope every operation returns. Transport
// handlers serialize it as-is; Success is the only field a client has to
// check.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

func okMsg[T any](data T, msg string) Response[T] {
	return Response[T]{Success: true, Data: data, Message: msg}
}

func fail[T any](msg string) Response[T] {
	return Response[T]{Success: false, Error: msg}
}

// transientErrors are the messages injected failures cycle through. They
// describe infrastructure faults, never domain errors, so clients can test
// retry paths against them.
var transientErrors = []string{
	"Network connection failed",
	"Server timeout",
	"Service temporarily unavailable",
	"Rate limit exceeded",
}

// API exposes the mock backend operations.
type API struct {
	store *store.Store
	log   zerolog.Logger

	mu  sync.Mutex
	cfg Config
	rng *rand.Rand        // simulation draws only
	gen *random.Generator // entity generation for live creates

	jwtSecret []byte
}

// New builds an API over st. The simulation source and the live-entity
// generator are both seeded from the wall clock: only seeded fixtures need
// reproducibility, live traffic should not repeat across restarts.
func New(st *store.Store, cfg Config, log zerolog.Logger, jwtSecret string) *API {
	now := time.Now().UnixNano()
	return &API{
		store:     st,
		log:       log.With().Str("component", "api").Logger(),
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(now)),
		gen:       random.New(now + 1),
		jwtSecret: []byte(jwtSecret),
	}
}

// Config returns the current simulation settings.
func (a *API) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// SetConfig merges a patch into the simulation settings and returns the
// result.
func (a *API) SetConfig(p ConfigPatch) Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	p.Apply(&a.cfg)
	a.log.Info().
		Bool("delay", a.cfg.EnableNetworkDelay).
		Bool("errors", a.cfg.EnableRandomErrors).
		Float64("errorRate", a.cfg.ErrorRate).
		Msg("simulation config updated")
	return a.cfg
}

// simulate applies the configured delay, then rolls for an injected error.
// It runs before any store access so a simulated failure never half-applies
// an operation. The injected error is transient by contract; callers
// surface its message verbatim.
func (a *API) simulate(ctx context.Context, op string) error {
	a.mu.Lock()
	cfg := a.cfg
	var delay time.Duration
	if cfg.EnableNetworkDelay && cfg.MaxDelayMs > 0 {
		spread := cfg.MaxDelayMs - cfg.MinDelayMs
		ms := cfg.MinDelayMs
		if spread > 0 {
			ms += a.rng.Intn(spread + 1)
		}
		delay = time.Duration(ms) * time.Millisecond
	}
	var inject bool
	var msg string
	if cfg.EnableRandomErrors && a.rng.Float64() < cfg.ErrorRate {
		inject = true
		msg = transientErrors[a.rng.Intn(len(transientErrors))]
	}
	a.mu.Unlock()

	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "request cancelled")
		}
	}
	if inject {
		a.log.Debug().Str("op", op).Str("error", msg).Msg("injected failure")
		return errors.New(msg)
	}
	return nil
}
