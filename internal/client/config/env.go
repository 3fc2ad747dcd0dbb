package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig maps environment variables onto config fields.
type envConfig struct {
	GatewayBaseURL    string `env:"QB_GATEWAY_URL"`
	RequestTimeoutSec int    `env:"QB_REQUEST_TIMEOUT"`
	SessionDBPath     string `env:"QB_SESSION_DB"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the corresponding fields untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.GatewayBaseURL != "" {
		cfg.GatewayBaseURL = ec.GatewayBaseURL
	}
	if ec.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(ec.RequestTimeoutSec) * time.Second
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
}
