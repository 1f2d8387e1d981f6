package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file in the searched directories.
const FileName = "gospline.yaml"

// Load loads configuration with priority: defaults < file.
//
// An explicit path must exist. Otherwise the working directory and ConfigDir
// are searched and a missing file leaves the defaults in place. Command line
// flags are applied on top by the caller.
func Load(explicitPath string) (*Config, error) {
	cfg := Default()

	configPath := explicitPath
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		filepath.Join(".", FileName),
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "gospline")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gospline")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gospline")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gospline")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
