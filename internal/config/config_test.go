package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"session-id: alice\n" +
			"computer-starts: true\n" +
			"no-color: true\n" +
			"redis:\n" +
			"  enabled: true\n" +
			"  host: cache\n" +
			"  port: \"6380\"\n" +
			"  session-ttl: 1h\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: every field is read
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "alice", conf.SessionID)
		assert.True(t, conf.ComputerStarts)
		assert.True(t, conf.NoColor)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Falls back to defaults and environment without a file", func(t *testing.T) {
		// Given: no config file and one override in the environment
		t.Setenv("TICTACTOE_SESSION_ID", "bob")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf := MustLoad(path)

		// Then: defaults apply and the override wins
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "bob", conf.SessionID)
		assert.False(t, conf.ComputerStarts)
		assert.False(t, conf.NoColor)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Panics on a broken file", func(t *testing.T) {
		// Given: a file that is not yaml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [\n"), 0o600))

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "", (&Redis{Host: "", Port: "6379"}).GetRedisAddr())
	assert.Equal(t, "127.0.0.1:6379", (&Redis{Host: "127.0.0.1", Port: "6379"}).GetRedisAddr())
}
