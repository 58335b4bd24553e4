package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
)

// Following the dot-config specification: https://dot-config.github.io/
// Project config: .config/design-prompts/config.yaml (in the repo root)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "design-prompts"
	// ConfigFile is the filename for project defaults
	ConfigFile = "config.yaml"
)

// Config holds project defaults for the scaffold command.
// Command-line flags always take precedence.
type Config struct {
	DefaultFormat      artifact.Format `yaml:"default_format,omitempty"`
	IncludeAssumptions bool            `yaml:"include_assumptions,omitempty"`
}

// Path returns the config file location for a repo root
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, ".config", ConfigDir, ConfigFile)
}

// Load reads the project config. A missing file yields an empty Config.
func Load(repoRoot string) (*Config, error) {
	path := Path(repoRoot)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the project config, creating .config/design-prompts if needed
func Save(repoRoot string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := Path(repoRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	header := "# design-prompts project defaults\n# Flags passed on the command line override these values.\n\n"
	return os.WriteFile(path, append([]byte(header), data...), 0644)
}

// Validate checks field values
func (c *Config) Validate() error {
	if c.DefaultFormat == "" {
		return nil
	}
	_, err := artifact.ParseFormat(string(c.DefaultFormat))
	return err
}
