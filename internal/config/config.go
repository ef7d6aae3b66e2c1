// Package config loads the md2wxml config file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppName is used for the config directory.
const AppName = "md2wxml"

// Config carries renderer and event-routing options. All fields are
// optional; zero values fall back to the renderer defaults.
type Config struct {
	ClassPrefix  string   `yaml:"class_prefix,omitempty"`
	LinkHandler  string   `yaml:"link_handler,omitempty"`
	ImageHandler string   `yaml:"image_handler,omitempty"`
	NavPrefixes  []string `yaml:"nav_prefixes,omitempty"`
	OutputFormat string   `yaml:"output_format,omitempty"` // wxml, json
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not locate home directory")
	}
	return filepath.Join(home, ".config", AppName, "config.yaml"), nil
}

// ReadConfig loads the config file from the default location.
func ReadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load loads config from the given path. A missing file yields a zero
// config, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(err, "could not open config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}
	return &cfg, nil
}

// Save writes the config to the given path, creating the directory first.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "could not create config directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "could not write config")
	}
	return nil
}
