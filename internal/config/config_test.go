package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "poolwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
Name: poolwatch-api
Host: 0.0.0.0
Port: 4000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "solana", cfg.Defaults.Network)
	assert.Equal(t, "9h7GAGU8T75jdD2uHhFGEMHzCLLDXdgireWZho8jgnKp", cfg.Defaults.Pool)
	assert.Equal(t, float64(100_000_000), cfg.Defaults.TotalSupply)
	assert.Equal(t, int64(8432), cfg.Defaults.Holders)
	assert.Equal(t, 10, cfg.TTL.Short)
	assert.Equal(t, 60, cfg.TTL.Medium)
	assert.Equal(t, 300, cfg.TTL.Long)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Nil(t, cfg.Gecko.Value)
	assert.Equal(t, dir, cfg.BaseDir())
}

func TestLoad_HydratesGeckoSection(t *testing.T) {
	dir := t.TempDir()
	geckoYAML := `
default: gecko
providers:
  gecko:
    type: geckoterminal
    timeout: 10s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gecko.yaml"), []byte(geckoYAML), 0o600))

	path := writeConfig(t, dir, `
Name: poolwatch-api
Host: 0.0.0.0
Port: 4000
Gecko:
  File: gecko.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Gecko.Value)
	assert.Equal(t, "gecko", cfg.Gecko.Value.Default)
}

func TestLoad_RejectsUnknownEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
Name: poolwatch-api
Host: 0.0.0.0
Port: 4000
Env: staging
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env must be one of")
}
