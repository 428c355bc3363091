// Package config loads service configuration from an optional
// .tableside.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tableside/tableside/internal/domain"
)

const fileName = ".tableside.yaml"

// YAMLLoader reads .tableside.yaml from a directory.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// rawConfig is the on-disk shape. Durations are strings in
// time.ParseDuration syntax ("30m", "1h").
type rawConfig struct {
	ServerName    string `yaml:"server_name"`
	MenuPath      string `yaml:"menu_path"`
	SessionTTL    string `yaml:"session_ttl"`
	SweepInterval string `yaml:"sweep_interval"`
}

// Load reads .tableside.yaml from dir. Returns DefaultServerConfig if
// the file does not exist; fields absent from the file keep their
// defaults.
func (l *YAMLLoader) Load(dir string) (domain.ServerConfig, error) {
	cfg := domain.DefaultServerConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.ServerConfig{}, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.ServerConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if raw.ServerName != "" {
		cfg.ServerName = raw.ServerName
	}
	if raw.MenuPath != "" {
		cfg.MenuPath = raw.MenuPath
	}
	if raw.SessionTTL != "" {
		ttl, err := time.ParseDuration(raw.SessionTTL)
		if err != nil {
			return domain.ServerConfig{}, fmt.Errorf("invalid session_ttl in %s: %w", fileName, err)
		}
		cfg.SessionTTL = ttl
	}
	if raw.SweepInterval != "" {
		every, err := time.ParseDuration(raw.SweepInterval)
		if err != nil {
			return domain.ServerConfig{}, fmt.Errorf("invalid sweep_interval in %s: %w", fileName, err)
		}
		cfg.SweepInterval = every
	}

	if err := cfg.Validate(); err != nil {
		return domain.ServerConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
