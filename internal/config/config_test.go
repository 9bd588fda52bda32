package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads yaml and fills defaults", func(t *testing.T) {
		// Given: a config file that only sets a few fields
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nredis:\n  host: cache\ngame:\n  ttl: 1h\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and defaults fill the rest
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Game.TTL)
		assert.Equal(t, 5*time.Second, conf.Game.BotMoveTimeout)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("http-port: \"8000\"\n"), 0o600))
		t.Setenv("HTTP_PORT", "8080")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
	})

	t.Run("Error on missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SOCKET_PORT", "7000")

	conf, err := LoadEnv()

	require.NoError(t, err)
	assert.Equal(t, "7000", conf.SocketPort)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, 24*time.Hour, conf.Game.TTL)
}
