package domain

import (
	"fmt"
	"time"
)

// ServerConfig holds service configuration loaded from .tableside.yaml.
type ServerConfig struct {
	// ServerName is the name the MCP server announces to clients.
	ServerName string

	// MenuPath points at the menu JSON file. When the file does not
	// exist the embedded default menu is served instead.
	MenuPath string

	// SessionTTL evicts sessions idle for longer than this duration.
	// Zero disables eviction; idle sessions then live for the process
	// lifetime, matching the historical behavior.
	SessionTTL time.Duration

	// SweepInterval is how often the eviction sweep runs. Only relevant
	// when SessionTTL is set.
	SweepInterval time.Duration
}

// DefaultServerConfig returns the configuration used when no config file
// is present.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ServerName:    "tableside",
		MenuPath:      "menu_items.json",
		SessionTTL:    0,
		SweepInterval: time.Minute,
	}
}

// Validate rejects configurations the server cannot run with.
func (c ServerConfig) Validate() error {
	if c.ServerName == "" {
		return fmt.Errorf("server_name must not be empty")
	}
	if c.MenuPath == "" {
		return fmt.Errorf("menu_path must not be empty")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session_ttl must not be negative (got %s)", c.SessionTTL)
	}
	if c.SessionTTL > 0 && c.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive when session_ttl is set (got %s)", c.SweepInterval)
	}
	return nil
}
