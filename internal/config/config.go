package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ledgerize-dev/ledgerize/internal/format"
	"github.com/ledgerize-dev/ledgerize/internal/rules"
)

// FileName is the default config file name in a project directory.
const FileName = "ledgerize.yaml"

// Config represents the top-level ledgerize.yaml configuration. Formats
// and Categories extend the built-in tables; they are appended after the
// built-ins so built-in matching priority is preserved.
type Config struct {
	Statements StatementsConfig       `yaml:"statements"`
	Ledger     LedgerConfig           `yaml:"ledger"`
	Formats    []format.AccountFormat `yaml:"formats,omitempty"`
	Categories []rules.Rule           `yaml:"categories,omitempty"`
}

// StatementsConfig locates the input statement exports.
type StatementsConfig struct {
	Dir string `yaml:"dir"`
}

// LedgerConfig locates the output ledger files.
type LedgerConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads a ledgerize.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Statements: StatementsConfig{Dir: "statements"},
		Ledger:     LedgerConfig{Dir: "ledger"},
	}
}
