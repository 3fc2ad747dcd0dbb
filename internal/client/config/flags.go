package config

import (
	"flag"
	"os"
	"time"

	"github.com/quickbites/quickbites-admin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   base URL of the backend gateway
//	-t int      gateway request timeout in seconds
//	-d string   path of the local session database
//
// Only these flags are considered; os.Args is filtered through
// flagx.FilterArgs so flags owned by other packages are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayBaseURL, "u", cfg.GatewayBaseURL, "base URL of the backend gateway")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "gateway request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
