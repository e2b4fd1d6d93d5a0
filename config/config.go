// Package config loads agentview settings from .agentview.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-directory configuration file.
const FileName = ".agentview.yaml"

// EngineConfig overrides how one backend command is invoked.
type EngineConfig struct {
	Command   string   `yaml:"command"`
	ExtraArgs []string `yaml:"extra_args"`
}

// Config holds agentview settings.
type Config struct {
	DefaultEngine string                  `yaml:"default_engine"`
	Engines       map[string]EngineConfig `yaml:"engines"`
}

// Load reads .agentview.yaml from a directory. Returns a default config if
// the file doesn't exist.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, FileName)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}

	return &config, nil
}

// CommandFor returns the configured command for an engine, or the fallback.
func (c *Config) CommandFor(name, fallback string) string {
	if c == nil {
		return fallback
	}
	if ec, ok := c.Engines[name]; ok && ec.Command != "" {
		return ec.Command
	}
	return fallback
}

// ExtraArgsFor returns the configured extra arguments for an engine.
func (c *Config) ExtraArgsFor(name string) []string {
	if c == nil {
		return nil
	}
	return c.Engines[name].ExtraArgs
}
