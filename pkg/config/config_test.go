package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "development", c.Environment)
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "http://127.0.0.1:5000", c.API.BaseURL)
	assert.Equal(t, 30*time.Second, c.API.Timeout)
	assert.False(t, c.Loader.Parallel)
	assert.True(t, c.Server.CORS)
	assert.NoError(t, c.Validate())
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, `
environment: production
api:
  base_url: http://analysis:5000
server:
  cors: false
loader:
  parallel: true
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "production", c.Environment)
	assert.Equal(t, "http://analysis:5000", c.API.BaseURL)
	assert.True(t, c.Loader.Parallel)
	assert.Equal(t, 8080, c.Server.Port)
	assert.False(t, c.Server.CORS)
	assert.Equal(t, "console", c.Log.Format)
}

func TestLoadRejectsBadBaseURL(t *testing.T) {
	path := writeConfig(t, "api:\n  base_url: ftp://nope\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_BASE_URL", "http://override:9000")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOADER_PARALLEL", "true")

	c, err := LoadWithEnv("")
	require.NoError(t, err)
	assert.Equal(t, "http://override:9000", c.API.BaseURL)
	assert.Equal(t, 9090, c.Server.Port)
	assert.True(t, c.Loader.Parallel)
}

func TestLoadWithEnvBadPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "eighty")
	_, err := LoadWithEnv("")
	require.Error(t, err)
}
