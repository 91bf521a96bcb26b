// Package params reads runtime settings from the environment.
package params

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultHost is the remote API used when ICONSYNC_HOST is unset.
const DefaultHost = "https://studio.plasmic.app"

// Env holds settings that can be supplied through environment variables.
type Env struct {
	Host       string        `env:"ICONSYNC_HOST"      envDefault:"https://studio.plasmic.app"`
	User       string        `env:"ICONSYNC_USER"`
	Token      string        `env:"ICONSYNC_TOKEN"`
	ConfigFile string        `env:"ICONSYNC_CONFIG"`
	AuthFile   string        `env:"ICONSYNC_AUTH_FILE"`
	HistoryDB  string        `env:"ICONSYNC_HISTORY_FILE"`
	Timeout    time.Duration `env:"ICONSYNC_TIMEOUT"   envDefault:"2m"`
}

// LoadEnv parses the environment into an Env.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	return cfg, nil
}
