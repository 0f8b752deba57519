package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkngn/payment-router/internal/route"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ROUTER_CONFIG", "ROUTER_HTTP_ADDR", "ROUTER_LOG_LEVEL", "ROUTER_LOG_PRETTY",
		"ROUTER_CORRIDORS_FILE", "ROUTER_ALLOWED_ORIGINS", "ROUTER_SHUTDOWN_TIMEOUT_SECONDS",
	} {
		t.Setenv(k, "")
	}
	// godotenv reads .env from the working directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "info", c.Logging.Level)
	assert.False(t, c.Logging.Pretty)
	assert.Equal(t, []string{"*"}, c.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout())
	assert.Equal(t, 5*time.Second, c.ReadTimeout())
	assert.Equal(t, 10*time.Second, c.WriteTimeout())
	assert.Equal(t, 60*time.Second, c.IdleTimeout())
	assert.Empty(t, c.CorridorsFile)
	assert.Empty(t, c.Corridors)
}

func TestLoad_YAMLFileAndEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "router.yaml")
	yml := `logging:
  level: debug
  pretty: true
server:
  addr: ":9000"
corridors_file: /data/corridors.txt
corridors:
  - {source: USD, destination: EUR, fee: 1.5, rate: 1.2}
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("ROUTER_CONFIG", path)
	t.Setenv("ROUTER_HTTP_ADDR", ":9100")
	t.Setenv("ROUTER_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9100", c.Server.Addr)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Pretty)
	assert.Equal(t, "/data/corridors.txt", c.CorridorsFile)
	assert.Equal(t, []route.Corridor{{Source: "USD", Destination: "EUR", Fee: 1.5, Rate: 1.2}}, c.Corridors)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.Server.AllowedOrigins)
	// unset in the file, default kept
	assert.Equal(t, 10, c.Server.ShutdownTimeoutSeconds)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("ROUTER_CORRIDORS_FILE=from-dotenv.txt\n"), 0o600))
	// godotenv never overrides variables that are already set, even to ""
	require.NoError(t, os.Unsetenv("ROUTER_CORRIDORS_FILE"))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.txt", c.CorridorsFile)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROUTER_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o600))
		t.Setenv("ROUTER_CONFIG", path)
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad shutdown timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROUTER_SHUTDOWN_TIMEOUT_SECONDS", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad log pretty", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROUTER_LOG_PRETTY", "yes please")
		_, err := Load()
		assert.ErrorContains(t, err, "ROUTER_LOG_PRETTY")
	})

	t.Run("non positive shutdown timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROUTER_SHUTDOWN_TIMEOUT_SECONDS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "shutdown timeout")
	})
}

func TestValidate(t *testing.T) {
	c := defaultConfig()
	assert.NoError(t, c.Validate())

	c.Server.Addr = "  "
	assert.ErrorContains(t, c.Validate(), "addr")
}
