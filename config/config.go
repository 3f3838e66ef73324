package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/sghaida/carsample/logger"
)

//go:embed defaults.yml
var defaultConfig []byte

// Config is the application configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// WaitForEnter keeps the console open until one line is read from stdin.
	WaitForEnter bool `yaml:"wait_for_enter" mapstructure:"wait_for_enter"`
}

// ApplyDefaults applies default values to nested sections.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.Logging.Validate()
}

// LoaderConfig holds optional inputs for Load.
type LoaderConfig struct {
	Overrides io.Reader
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithOverrides merges a YAML document over the embedded defaults.
func WithOverrides(r io.Reader) LoaderOption {
	return func(lc *LoaderConfig) { lc.Overrides = r }
}

// Load reads the embedded defaults, merges overrides and validates the result.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(defaultConfig)); err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	if lc.Overrides != nil {
		if err := v.MergeConfig(lc.Overrides); err != nil {
			return nil, fmt.Errorf("failed to merge config overrides: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
