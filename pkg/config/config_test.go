package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_NAME")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "catalog", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvPriority(t *testing.T) {
	dir := t.TempDir()
	content := "APP_ENV=staging\nAPP_NAME=catalog-file\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	t.Setenv("APP_NAME", "")
	os.Unsetenv("APP_NAME")
	t.Setenv("APP_ENV", "")
	os.Unsetenv("APP_ENV")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Env, "valor tomado del archivo")
	assert.Equal(t, "catalog-file", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level, "la variable de entorno tiene prioridad")
}
