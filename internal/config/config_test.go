package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestDefault_Valid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, 128, c.Planner.CacheSize)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "lvroute.yaml", `
log:
  level: debug
  format: console
server:
  addr: 127.0.0.1:9000
  map_file: data/sample.txt
  shutdown_timeout: 3s
planner:
  cache_size: 16
  strict_weights: true
`)
	c, err := Load(p, writeFile(t, "empty.env", ""))
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, "127.0.0.1:9000", c.Server.Addr)
	assert.Equal(t, "data/sample.txt", c.Server.MapFile)
	assert.Equal(t, 3*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, c.Server.ReadHeaderTimeout, "unset keys keep defaults")
	assert.Equal(t, 16, c.Planner.CacheSize)
	assert.True(t, c.Planner.StrictWeights)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "lvroute.yaml", "server:\n  addr: :7000\n")
	t.Setenv(EnvAddr, ":7100")
	t.Setenv(EnvLogLevel, "warn")

	c, err := Load(p, writeFile(t, "empty.env", ""))
	require.NoError(t, err)
	assert.Equal(t, ":7100", c.Server.Addr)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Cleanup(func() { _ = os.Unsetenv(EnvCacheSize) })
	env := writeFile(t, "test.env", EnvCacheSize+"=7\n")

	c, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Planner.CacheSize)
}

func TestLoad_Errors(t *testing.T) {
	empty := writeFile(t, "empty.env", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), empty)
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "server: [unterminated"), empty)
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad-level.yaml", "log:\n  level: loud\n"), empty)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeFile(t, "neg.yaml", "planner:\n  cache_size: -1\n"), empty)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogFormat:       "console",
		EnvMapFile:         "m.txt",
		EnvShutdownTimeout: "250ms",
		EnvStrictWeights:   "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	c := Default()
	require.NoError(t, c.applyEnv(lookup))
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, "m.txt", c.Server.MapFile)
	assert.Equal(t, 250*time.Millisecond, c.Server.ShutdownTimeout)
	assert.True(t, c.Planner.StrictWeights)

	for key, bad := range map[string]string{
		EnvShutdownTimeout: "soon",
		EnvCacheSize:       "many",
		EnvStrictWeights:   "perhaps",
	} {
		c := Default()
		err := c.applyEnv(func(k string) (string, bool) {
			if k == key {
				return bad, true
			}
			return "", false
		})
		assert.ErrorIs(t, err, ErrInvalid, key)
	}
}
