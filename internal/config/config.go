// Package config loads the siambooks.yaml business configuration and
// the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level siambooks.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	VAT      VATConfig      `yaml:"vat"`
	Credit   CreditConfig   `yaml:"credit"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name  string `yaml:"name"`
	TaxID string `yaml:"tax_id,omitempty"`
}

// VATConfig sets the rate applied when a line item omits one.
type VATConfig struct {
	DefaultRate string `yaml:"default_rate"` // percent, e.g. "7"
}

// CreditConfig sets the limit applied when a counterparty omits one.
type CreditConfig struct {
	DefaultLimit string `yaml:"default_limit"`
}

// ServerConfig holds runtime settings for the HTTP adapter, read from
// SIAMBOOKS_* environment variables.
type ServerConfig struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	RequestLimit    int           `envconfig:"REQUEST_LIMIT" default:"120"`
	RequestWindow   time.Duration `envconfig:"REQUEST_WINDOW" default:"1m"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads a siambooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new set of
// books.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		VAT:      VATConfig{DefaultRate: "7"},
		Credit:   CreditConfig{DefaultLimit: "100000"},
	}
}

// ServerFromEnv reads ServerConfig from the environment.
func ServerFromEnv() (ServerConfig, error) {
	var cfg ServerConfig
	if err := envconfig.Process("siambooks", &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("reading server config: %w", err)
	}
	return cfg, nil
}
