package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment overrides for the CLI. Flags win over these.
type Env struct {
	DB        string `env:"GRIDIRON_DB" envDefault:"~/.gridiron/gridiron.db"`
	Seed      int64  `env:"GRIDIRON_SEED" envDefault:"0"`
	LogLevel  string `env:"GRIDIRON_LOG_LEVEL" envDefault:"info"`
	ConfigDir string `env:"GRIDIRON_CONFIG_DIR"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
