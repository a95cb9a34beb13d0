// Package config loads the console configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the global grift configuration.
type Config struct {
	Console ConsoleConfig `yaml:"console"`
	Audit   AuditConfig   `yaml:"audit"`
	Game    GameConfig    `yaml:"game"`
}

// ConsoleConfig controls the interactive prompt.
type ConsoleConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// AuditConfig controls the chain audit log.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// GameConfig seeds the demo game state.
type GameConfig struct {
	StartCash   int `yaml:"start_cash"`
	StartEnergy int `yaml:"start_energy"`
	StartLevel  int `yaml:"start_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Console: ConsoleConfig{
			Prompt:      "grift> ",
			HistoryFile: filepath.Join(home, ".local", "share", "grift", "history"),
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    filepath.Join(home, ".local", "share", "grift", "audit.jsonl"),
		},
		Game: GameConfig{
			StartCash:   250,
			StartEnergy: 100,
			StartLevel:  1,
		},
	}
}

// Load reads the config from the standard location
// (~/.config/grift/config.yaml). A missing file yields the defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(filepath.Join(home, ".config", "grift", "config.yaml"))
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Audit.Path = expandHome(cfg.Audit.Path)
	cfg.Console.HistoryFile = expandHome(cfg.Console.HistoryFile)
	return cfg, nil
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, path[1:])
}

// ConfigPath returns the standard config file path.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "grift", "config.yaml")
}
