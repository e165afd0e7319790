package httpclient

import (
	"fmt"
	"net/http"
	"time"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRedirects = 10
)

// Config configures the HTTP client.
type Config struct {
	// Timeout bounds a whole exchange at the transport layer. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// Headers are default headers applied to every request. Per-call
	// headers take precedence on key collision.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures the context used for secure channels.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// MaxRedirects caps redirects followed by the transport. Defaults to 10.
	// A negative value disables following; the 3xx response is returned as is.
	MaxRedirects int `yaml:"max_redirects" mapstructure:"max_redirects"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRedirects == 0 {
		c.MaxRedirects = defaultMaxRedirects
	}
	if len(c.Headers) > 0 {
		c.Headers = canonicalHeaders(c.Headers)
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// canonicalHeaders returns a copy of h keyed by canonical header names.
func canonicalHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[http.CanonicalHeaderKey(k)] = v
	}
	return out
}
