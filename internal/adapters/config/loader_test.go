package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))
	return dir
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "capacity: 50\nroot: web\n")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Capacity)
	assert.Equal(t, "web", cfg.Root)
	// Untouched sections keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.TTL.Short.Std())
	assert.Equal(t, []string{"npx", "tsc", "--noEmit"}, cfg.Commands.Compile)
}

func TestLoad_FullFile(t *testing.T) {
	dir := writeConfig(t, `
root: .
excludes: [node_modules, vendor]
ttl:
  short: 10s
  medium: 2m
  long: 1h
capacity: 200
monitor:
  interval: 15s
  cleanupInterval: 30s
  cleanupThreshold: 0.9
  sizeTarget: 0.5
  historyCap: 100
commands:
  compile: [npx, tsc, -p, tsconfig.build.json, --noEmit]
`)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"node_modules", "vendor"}, cfg.Excludes)
	assert.Equal(t, 10*time.Second, cfg.TTL.Short.Std())
	assert.Equal(t, time.Hour, cfg.TTL.Long.Std())
	assert.InDelta(t, 0.9, cfg.Monitor.CleanupThreshold, 1e-9)
	assert.Equal(t, []string{"npx", "tsc", "-p", "tsconfig.build.json", "--noEmit"}, cfg.Commands.Compile)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "capacity: [not a number\n")

	_, err := config.Load(dir)
	require.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero capacity", content: "capacity: 0\n"},
		{name: "threshold above one", content: "monitor:\n  cleanupThreshold: 1.5\n"},
		{name: "target above threshold", content: "monitor:\n  sizeTarget: 0.95\n"},
		{name: "negative ttl", content: "ttl:\n  short: -1s\n"},
		{name: "zero monitor interval", content: "monitor:\n  interval: 0s\n"},
		{name: "zero cleanup interval", content: "monitor:\n  cleanupInterval: 0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)

			_, err := config.Load(dir)
			assert.Error(t, err)
		})
	}
}
