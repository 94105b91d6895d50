package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the knobs a caller may take from the environment. Values use
// the prefix "POLLWISE_". Example: POLLWISE_BASE_URL=http://polls:8000 .
//
// The SDK never loads this itself; core operations read nothing from the
// environment. LoadConfig is an opt-in convenience for applications that
// want their client wiring env-driven.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL"     default:"http://localhost:8000"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG"        default:"false"`
}

// LoadConfig populates Config from environment variables (prefix POLLWISE_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("POLLWISE", &c)
}

// NewFromConfig constructs a Client from cfg. Extra options are applied after
// the ones derived from cfg and may override them.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	derived := make([]Option, 0, 2+len(opts))
	if cfg.HTTPTimeout > 0 {
		derived = append(derived, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Debug {
		derived = append(derived, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, append(derived, opts...)...)
}
