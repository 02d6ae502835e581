package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFromEnv builds the configuration from defaults and environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, fmt.Errorf("load from env: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML configuration file, then applies environment
// overrides and defaults.
func LoadFromFile(path string) (Config, error) {
	var cfg Config

	// Clean the path to prevent directory traversal attacks
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - Config file path is trusted (from admin/user)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, fmt.Errorf("apply env overrides: %w", err)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load picks LoadFromFile when path is set and LoadFromEnv otherwise.
func Load(path string) (Config, error) {
	if path == "" {
		return LoadFromEnv()
	}
	return LoadFromFile(path)
}
