// Package config loads application settings from the deckgen config
// file, with environment variables taking precedence over file values.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/calebmoss/deckgen/internal/llm"
)

// Config holds the file-backed application settings. LLM-specific
// fields are merged into llm.Config at load time; environment
// variables read by llm.LoadConfig always win over file values.
type Config struct {
	// OutputDir is where exports are written. Defaults to ./exports.
	OutputDir string `yaml:"output_dir,omitempty"`

	// DatabasePath overrides the default project database location.
	DatabasePath string `yaml:"database_path,omitempty"`

	// DefaultModel is the model used when a command does not name one.
	DefaultModel string `yaml:"default_model,omitempty"`

	// OllamaEndpoint overrides the local Ollama address.
	OllamaEndpoint string `yaml:"ollama_endpoint,omitempty"`

	// LogLLMCalls enables per-call logging on the LLM client.
	LogLLMCalls bool `yaml:"log_llm_calls,omitempty"`

	// Models adds to or overrides the built-in model registry.
	Models map[string]llm.ModelConfig `yaml:"models,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: "exports",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".deckgen"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file if present. A missing file is not an
// error; defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultConfig().OutputDir
	}
	return cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LLMConfig produces the LLM client configuration: built-in defaults,
// overlaid with file settings, overlaid with environment variables.
func (c *Config) LLMConfig() llm.Config {
	base := llm.DefaultConfig()

	if c.DefaultModel != "" {
		base.DefaultModel = c.DefaultModel
	}
	if c.OllamaEndpoint != "" {
		base.OllamaEndpoint = c.OllamaEndpoint
	}
	if c.LogLLMCalls {
		base.LogCalls = true
	}
	for id, m := range c.Models {
		if m.Name == "" {
			m.Name = id
		}
		base.Models[id] = m
	}

	// Environment always wins.
	return llm.ApplyEnv(base)
}
