// Package config loads shacalc settings from a YAML file.
//
// The file is chosen by the --config flag, then the SHACALC_CONFIG
// environment variable, then the per-user default location. Only an
// explicitly named file must exist; a missing default file yields defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"shacalc/internal/logging"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "SHACALC_CONFIG"

// Config is the complete shacalc configuration.
type Config struct {
	Prompt PromptConfig `yaml:"prompt"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// PromptConfig configures the interactive loop.
type PromptConfig struct {
	// Sentinel is the input line that ends the loop.
	Sentinel string `yaml:"sentinel"`
	// Prompt is printed before each read when input is a terminal.
	Prompt string `yaml:"prompt"`
	// Banner enables the welcome and farewell lines.
	Banner bool `yaml:"banner"`
}

// OutputConfig configures digest display.
type OutputConfig struct {
	// Uppercase prints digests with uppercase hex letters. The canonical
	// digest is always lowercase; this affects display only.
	Uppercase bool `yaml:"uppercase"`
}

// LogConfig configures diagnostics.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt: PromptConfig{
			Sentinel: "-1",
			Prompt:   "Input [-1 to exit]: ",
			Banner:   true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load resolves the config file from flagPath, EnvVar, or the default path,
// in that order, and loads it.
func Load(flagPath string) (Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if envPath := os.Getenv(EnvVar); envPath != "" {
		return LoadFile(envPath)
	}

	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads path over the defaults and validates the result.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	sentinel := c.Prompt.Sentinel
	if strings.TrimSpace(sentinel) == "" {
		return errors.New("prompt.sentinel must not be empty")
	}
	// Input lines are trimmed before the sentinel comparison.
	if strings.TrimSpace(sentinel) != sentinel {
		return fmt.Errorf("prompt.sentinel %q must not have surrounding whitespace", sentinel)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "shacalc", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home dir: %w", err)
	}
	return filepath.Join(home, ".config", "shacalc", "config.yaml"), nil
}
