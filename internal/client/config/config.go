// Package config loads runtime settings for the QuickBites admin client.
//
// Sources are applied in order, later ones winning: built-in defaults, a JSON
// config file (path via -c/-config), environment variables, command-line
// flags.
package config

import "time"

// Config holds runtime settings for the admin client.
//
// Fields:
//   - GatewayBaseURL: base URL of the backend REST gateway, no trailing slash.
//   - RequestTimeout: per-request timeout for gateway calls.
//   - SessionDBPath: path of the local SQLite session database.
type Config struct {
	GatewayBaseURL string
	RequestTimeout time.Duration
	SessionDBPath  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayBaseURL = "https://quickbites-api.onrender.com"
	c.RequestTimeout = 10 * time.Second
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file is given), environment variables, and command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
