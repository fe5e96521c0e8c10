package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value clears the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that Load sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT":                     "",
		"TASKAPI_SERVER_LOG_LEVEL":                "",
		"TASKAPI_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "",
		"TASKAPI_DOCS_ENABLED":                    "",
		"TASKAPI_DOCS_TITLE":                      "",
		ConfigFileEnv:                             "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8000, cfg.Server.Port, "Default server port should be 8000")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.True(t, cfg.Docs.Enabled)
	assert.Equal(t, "Task API", cfg.Docs.Title)
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"TASKAPI_SERVER_PORT":                     "9090",
		"TASKAPI_SERVER_LOG_LEVEL":                "debug",
		"TASKAPI_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "3",
		"TASKAPI_DOCS_ENABLED":                    "false",
		"TASKAPI_DOCS_TITLE":                      "Chores",
		ConfigFileEnv:                             "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSeconds)
	assert.False(t, cfg.Docs.Enabled)
	assert.Equal(t, "Chores", cfg.Docs.Title)
}

// TestLoadFromFile verifies file values are used and environment variables override them.
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taskapi.yaml")
	content := []byte("server:\n  port: 7000\n  log_level: warn\ndocs:\n  title: From File\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	setupEnv(t, map[string]string{
		ConfigFileEnv:              path,
		"TASKAPI_SERVER_PORT":      "",
		"TASKAPI_SERVER_LOG_LEVEL": "error",
		"TASKAPI_DOCS_TITLE":       "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port, "port should come from the file")
	assert.Equal(t, "error", cfg.Server.LogLevel, "env should override the file")
	assert.Equal(t, "From File", cfg.Docs.Title)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	setupEnv(t, map[string]string{
		ConfigFileEnv: filepath.Join(t.TempDir(), "missing.yaml"),
	})

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoadValidationErrors verifies that Load correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"TASKAPI_SERVER_PORT": "999999",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"TASKAPI_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Shutdown timeout too long",
			envVars: map[string]string{
				"TASKAPI_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "3600",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(ConfigFileEnv, "")
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Server: ServerConfig{Port: 8000, LogLevel: "info", ShutdownTimeoutSeconds: 5},
		Docs:   DocsConfig{Enabled: true, Title: "Task API"},
	}
	assert.NoError(t, Validate(valid))

	missingTitle := *valid
	missingTitle.Docs.Title = ""
	assert.Error(t, Validate(&missingTitle))
}
