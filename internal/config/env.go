package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds settings that may come from the environment.
// Zero values mean "not set"; CLI flags take precedence over them.
type EnvOverrides struct {
	ConfigPath string `env:"EAGLE_CONFIG"`
	DBPath     string `env:"EAGLE_DB"`
	Seed       int64  `env:"EAGLE_SEED"`
	FPS        int    `env:"EAGLE_FPS"`
	LogLevel   string `env:"EAGLE_LOG_LEVEL"`
	SSHAddr    string `env:"EAGLE_SSH_ADDR"`
}

// LoadEnv reads EnvOverrides from the process environment.
func LoadEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}
