// Package config holds environment-driven configuration for the CLI surfaces.
package config

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Serve configures the `dialogic serve` HTTP server.
type Serve struct {
	// Addr is the listen address.
	Addr string `env:"DIALOGIC_ADDR" envDefault:":8410"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration `env:"DIALOGIC_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// RedisAddr, when set, switches session storage from memory to Redis.
	RedisAddr     string `env:"DIALOGIC_REDIS_ADDR"`
	RedisPassword string `env:"DIALOGIC_REDIS_PASSWORD,unset"`
	RedisDB       int    `env:"DIALOGIC_REDIS_DB" envDefault:"0"`

	// SessionTTL is the Redis session expiration. Zero keeps sessions forever.
	SessionTTL time.Duration `env:"DIALOGIC_SESSION_TTL" envDefault:"0"`

	// StateKey, when set, encrypts session state at rest. Hex-encoded,
	// must decode to 32 bytes (AES-256).
	StateKey string `env:"DIALOGIC_STATE_KEY,unset"`

	// HistoryLimit caps the directive history persisted per session.
	// Zero keeps everything.
	HistoryLimit int `env:"DIALOGIC_HISTORY_LIMIT" envDefault:"0"`
}

// StateKeyBytes decodes the configured encryption key.
func (s Serve) StateKeyBytes() ([]byte, error) {
	if s.StateKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(s.StateKey)
	if err != nil {
		return nil, fmt.Errorf("DIALOGIC_STATE_KEY is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("DIALOGIC_STATE_KEY must decode to 32 bytes, got %d", len(key))
	}
	return key, nil
}

// LoadServe reads the serve configuration from the environment.
func LoadServe() (Serve, error) {
	var cfg Serve
	if err := env.Parse(&cfg); err != nil {
		return Serve{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
