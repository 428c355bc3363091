package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableside/tableside/internal/adapters/outbound/config"
	"github.com/tableside/tableside/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tableside.yaml"), []byte(content), 0644))
	return dir
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServerConfig(), cfg)
}

func TestLoad_OverridesFields(t *testing.T) {
	dir := writeConfig(t, `
server_name: bistro
menu_path: data/menu.json
session_ttl: 30m
sweep_interval: 2m
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "bistro", cfg.ServerName)
	assert.Equal(t, "data/menu.json", cfg.MenuPath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 2*time.Minute, cfg.SweepInterval)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "menu_path: other.json\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "other.json", cfg.MenuPath)
	assert.Equal(t, "tableside", cfg.ServerName)
	assert.Zero(t, cfg.SessionTTL)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "menu_path: [unclosed\n")

	_, err := config.New().Load(dir)
	assert.ErrorContains(t, err, "parsing .tableside.yaml")
}

func TestLoad_BadDuration(t *testing.T) {
	dir := writeConfig(t, "session_ttl: soon\n")

	_, err := config.New().Load(dir)
	assert.ErrorContains(t, err, "session_ttl")
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	dir := writeConfig(t, "session_ttl: -5m\n")

	_, err := config.New().Load(dir)
	assert.ErrorContains(t, err, "invalid .tableside.yaml")
}
