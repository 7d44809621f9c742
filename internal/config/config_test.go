package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else comes from env-default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "easy", conf.Game.DefaultDifficulty)
		assert.Equal(t, "X", conf.Game.DefaultMark)
		assert.Equal(t, 24*time.Hour, conf.Game.TTL)
		assert.Zero(t, conf.Game.RandomSeed)
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		path := writeConfig(t, `
redis:
  host: redis
  port: "6380"
  db: 2
game:
  default-difficulty: hard
  default-mark: O
  ttl: 30m
  random-seed: 42
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, "hard", conf.Game.DefaultDifficulty)
		assert.Equal(t, "O", conf.Game.DefaultMark)
		assert.Equal(t, 30*time.Minute, conf.Game.TTL)
		assert.Equal(t, int64(42), conf.Game.RandomSeed)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8080")
		path := writeConfig(t, "http-port: \"7070\"\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
