package seqctl

import (
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/validation"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the seqctl configuration, read from seqctl.yml and the
// environment (OUTPUT_FORMAT, LOGGING_LEVEL, ...).
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Output               OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls how command results are written to stdout.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format" validate:"required,oneof=json yaml"`
	Indent int    `yaml:"indent" mapstructure:"indent" validate:"gte=0,lte=8"`
}

// defaults registers every key so that environment variables can bind to it.
func defaults() []config.LoaderOption {
	return []config.LoaderOption{
		config.WithDefault("name", "seqctl"),
		config.WithDefault("environment", "production"),
		config.WithDefault("debug", false),
		config.WithDefault("logging.level", "warn"),
		config.WithDefault("logging.format", "console"),
		config.WithDefault("logging.output", "stderr"),
		config.WithDefault("logging.no_color", false),
		config.WithDefault("logging.timestamp", false),
		config.WithDefault("logging.caller", false),
		config.WithDefault("output.format", FormatJSON),
		config.WithDefault("output.indent", 0),
	}
}

// LoadConfig loads, defaults and validates the seqctl configuration.
func LoadConfig(opts ...config.LoaderOption) (*Config, error) {
	cfg, err := loadConfig(opts...)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfig(opts ...config.LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := config.LoadConfig("seqctl", cfg, append(defaults(), opts...)...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and the shared service fields.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return errors.InvalidConfig(err)
	}
	if err := c.ServiceConfig.Validate(); err != nil {
		return errors.InvalidConfig(err)
	}
	return nil
}
