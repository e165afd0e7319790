package config

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kbukum/sheetfeed/httpclient"
	"github.com/kbukum/sheetfeed/logger"
	"github.com/kbukum/sheetfeed/observability"
	"github.com/kbukum/sheetfeed/server"
	"github.com/kbukum/sheetfeed/validation"
	"github.com/kbukum/sheetfeed/version"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultIndent is the JSON indentation width when none is configured.
const DefaultIndent = 1

// OutputConfig controls how converted records are printed.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=json yaml"`
	// Indent is the number of spaces per JSON nesting level; 0 prints compact JSON.
	Indent int `yaml:"indent" mapstructure:"indent" validate:"gte=0"`
	// Watch re-fetches on this interval when positive.
	Watch time.Duration `yaml:"watch" mapstructure:"watch" validate:"gte=0"`
}

// ApplyDefaults applies default values to output configuration.
func (c *OutputConfig) ApplyDefaults() {
	if c.Format == "" {
		c.Format = FormatJSON
	}
}

// Validate validates output configuration.
func (c *OutputConfig) Validate() error {
	v := validation.New().
		Required("output.format", c.Format).
		OneOf("output.format", c.Format, []string{FormatJSON, FormatYAML}).
		Min("output.indent", c.Indent, 0).
		Custom(c.Watch >= 0, "output.watch", "must be non-negative")
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Config is the complete sheetfeed configuration.
type Config struct {
	Base          BaseConfig           `yaml:"base" mapstructure:"base"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	HTTP          httpclient.Config    `yaml:"http" mapstructure:"http"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
	Output        OutputConfig         `yaml:"output" mapstructure:"output"`
}

// ApplyDefaults applies defaults to every section and propagates the service
// identity into logging, observability and the outbound User-Agent.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	if c.Base.Version == "" {
		c.Base.Version = version.Version
	}
	if c.Base.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()

	c.HTTP.ApplyDefaults()
	if c.HTTP.Headers == nil {
		c.HTTP.Headers = map[string]string{}
	}
	if _, ok := c.HTTP.Headers["User-Agent"]; !ok {
		c.HTTP.Headers[http.CanonicalHeaderKey("User-Agent")] = version.UserAgent()
	}

	c.Server.ApplyDefaults()

	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = c.Base.Name
	}
	if c.Observability.ServiceVersion == "" {
		c.Observability.ServiceVersion = c.Base.Version
	}
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Base.Environment
	}
	c.Observability.ApplyDefaults()

	c.Output.ApplyDefaults()
}

// Validate validates struct tags first, then each section's own rules.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	checks := []struct {
		name string
		fn   func() error
	}{
		{"base", c.Base.Validate},
		{"logging", c.Logging.Validate},
		{"http", c.HTTP.Validate},
		{"server", c.Server.Validate},
		{"observability", c.Observability.Validate},
		{"output", c.Output.Validate},
	}
	for _, check := range checks {
		if err := check.fn(); err != nil {
			return fmt.Errorf("config.%s: %w", check.name, err)
		}
	}
	return nil
}

// Load reads the configuration for serviceName, applies defaults and
// validates the result.
func Load(serviceName string, opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	opts = append([]LoaderOption{
		WithDefault("base.name", serviceName),
		WithDefault("output.indent", DefaultIndent),
	}, opts...)
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
