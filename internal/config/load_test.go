package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes a temporary yaml config and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadWithFile("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  log_level: debug
  shutdown_timeout: 5
`)

	cfg, err := loadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  log_level: debug
`)

	t.Setenv("TASKDESK_SERVER_PORT", "3000")
	t.Setenv("TASKDESK_SERVER_LOG_LEVEL", "warn")

	cfg, err := loadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("TASKDESK_SERVER_PORT", "8181")
	t.Setenv("TASKDESK_SERVER_SHUTDOWN_TIMEOUT", "30")

	cfg, err := loadWithFile("")
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{
			name:   "port_out_of_range",
			envVar: "TASKDESK_SERVER_PORT",
			value:  "70000",
		},
		{
			name:   "port_negative",
			envVar: "TASKDESK_SERVER_PORT",
			value:  "-1",
		},
		{
			name:   "log_level_outside_enum",
			envVar: "TASKDESK_SERVER_LOG_LEVEL",
			value:  "verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			_, err := loadWithFile("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "server: [not: valid: yaml")

	_, err := loadWithFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
