package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExpandEnvWithDefaults(t *testing.T) {
	t.Setenv("PLAYGROUND_SET", "from-env")

	assert.Equal(t, "from-env", expandEnvWithDefaults("${PLAYGROUND_SET:-fallback}"))
	assert.Equal(t, "fallback", expandEnvWithDefaults("${PLAYGROUND_UNSET:-fallback}"))
	assert.Equal(t, "", expandEnvWithDefaults("${PLAYGROUND_UNSET}"))
	assert.Equal(t, "redis://from-env:6379", expandEnvWithDefaults("redis://${PLAYGROUND_SET}:6379"))
	assert.Equal(t, "plain", expandEnvWithDefaults("plain"))
}

func TestInitConfig_ExpandsAndTypesValues(t *testing.T) {
	t.Setenv("PLAYGROUND_HTTP_PORT", "9090")
	t.Setenv("PLAYGROUND_SWAGGER", "false")

	path := writeConfig(t, `
server:
  port_http: ${PLAYGROUND_HTTP_PORT:-8080}
  auth_token: ${PLAYGROUND_TOKEN:-}
swagger:
  enabled: ${PLAYGROUND_SWAGGER:-true}
storage:
  notes: ${PLAYGROUND_NOTES:-mongo}
  redis:
    addr: ${PLAYGROUND_REDIS:-cache:6379}
`)

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.PortHTTP)
	assert.Empty(t, cfg.Server.AuthToken)
	assert.False(t, cfg.Swagger.Enabled)
	assert.Equal(t, "mongo", cfg.Storage.Notes)
	assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
}

func TestInitConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: debug\n")

	cfg, err := InitConfig[Config](path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 8080, cfg.Server.PortHTTP)
	assert.Equal(t, 50051, cfg.Server.PortGRPC)
	assert.Equal(t, "memory", cfg.Storage.Notes)
	assert.Equal(t, "sqlite", cfg.Storage.Search)
	require.NotNil(t, cfg.Storage.Mongo)
	assert.Equal(t, "playground", cfg.Storage.Mongo.Database)
	require.NotNil(t, cfg.Health)
	assert.Equal(t, 15, cfg.Health.CheckInterval)
}

func TestInitConfig_MissingFile(t *testing.T) {
	_, err := InitConfig[Config](filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	assert.Equal(t, "config.yml", Path("config.yml"))

	t.Setenv("CONFIG_FILE", "/etc/playground.yml")
	assert.Equal(t, "/etc/playground.yml", Path("config.yml"))
}
