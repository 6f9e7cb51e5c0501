package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `{
			"base_url": "https://example.com/aoc/",
			"year": 2022,
			"token": "  abc  ",
			"retry_attempts": 5
		}`)
		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/aoc", cfg.BaseURL)
		assert.Equal(t, 2022, cfg.Year)
		assert.Equal(t, "abc", cfg.Token)
		assert.Equal(t, 5, cfg.RetryAttempts)
		assert.Equal(t, defaultUA, cfg.UserAgent)
		assert.Equal(t, defaultTimeout, cfg.TimeoutSeconds)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, `{"year": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load config")
	})

	invalid := map[string]string{
		"year too early":   `{"year": 1999}`,
		"base url":         `{"base_url": "not a url"}`,
		"zero timeout":     `{"timeout_seconds": 0}`,
		"too many retries": `{"retry_attempts": 50}`,
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestResolveToken(t *testing.T) {
	cfg := defaultConfig()
	cfg.Token = "from-config"

	t.Run("argument wins", func(t *testing.T) {
		t.Setenv("TOKEN", "from-env")
		got, err := resolveToken("from-arg", cfg)
		require.NoError(t, err)
		assert.Equal(t, "from-arg", got)
	})

	t.Run("environment before config", func(t *testing.T) {
		t.Setenv("TOKEN", "from-env")
		got, err := resolveToken("", cfg)
		require.NoError(t, err)
		assert.Equal(t, "from-env", got)
	})

	t.Run("config last", func(t *testing.T) {
		t.Setenv("TOKEN", "")
		got, err := resolveToken(" ", cfg)
		require.NoError(t, err)
		assert.Equal(t, "from-config", got)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Setenv("TOKEN", "")
		_, err := resolveToken("", defaultConfig())
		assert.ErrorIs(t, err, errMissingToken)
	})
}
