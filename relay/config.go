package relay

import (
	"os"

	"github.com/payrelay/flowgate/flow"
)

// Config is the configuration for the relay application. It is read once at
// startup and never mutated afterwards.
type Config struct {
	HTTPAddr string
	// GatewayBaseURL is the gateway API root, e.g. "https://sandbox.flow.cl/api".
	GatewayBaseURL string
	// APIKey and SecretKey are the process-wide default credential pair, used
	// when a request does not carry its own.
	APIKey    string
	SecretKey string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:       "localhost:8080",
		GatewayBaseURL: "https://sandbox.flow.cl/api",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for anything unset.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.GatewayBaseURL = getenv("FLOW_BASE_URL", cfg.GatewayBaseURL)
	cfg.APIKey = getenv("FLOW_API_KEY", "")
	cfg.SecretKey = getenv("FLOW_SECRET_KEY", "")
	return cfg
}

// ResolveCredentials returns the credential pair for one request: caller
// supplied values win, the process-wide defaults fill anything absent. The
// decision is made per request, nothing is cached.
func (c *Config) ResolveCredentials(apiKey, secretKey string) flow.Credentials {
	creds := flow.Credentials{APIKey: c.APIKey, SecretKey: c.SecretKey}
	if apiKey != "" {
		creds.APIKey = apiKey
	}
	if secretKey != "" {
		creds.SecretKey = secretKey
	}
	return creds
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
