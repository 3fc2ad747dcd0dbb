package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/quickbites/quickbites-admin/internal/flagx"
)

// jsonConfig is the DTO for JSON unmarshalling. The timeout is expressed in
// whole seconds to keep config files simple.
type jsonConfig struct {
	GatewayBaseURL    string `json:"gateway_base_url"`
	RequestTimeoutSec int    `json:"request_timeout_seconds"`
	SessionDBPath     string `json:"session_db_path"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Without the flag nothing is loaded. Read or unmarshal
// errors panic; config problems should stop the process before any state
// is touched.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GatewayBaseURL != "" {
		cfg.GatewayBaseURL = jc.GatewayBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
