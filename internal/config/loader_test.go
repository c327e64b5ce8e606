package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing path", filepath.Join(t.TempDir(), "nope")},
		{"empty directory", t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			require.NoError(t, err)
			assert.Equal(t, GetDefaultConfig(), cfg)
		})
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
server:
  transport: streamable-http
  port: 9001
logging:
  level: debug
functions:
  timezone: Europe/Berlin
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, MCPTransportStreamableHTTP, cfg.Server.Transport)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, DefaultHost, cfg.Server.Host, "unset fields keep defaults")
	assert.Equal(t, DefaultMetricsPath, cfg.Server.MetricsPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, "Europe/Berlin", cfg.Functions.Timezone)
}

func TestLoadConfig_TOMLFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "monolith.toml", `
[server]
transport = "sse"
host = "0.0.0.0"
metricsPath = "/prom"

[logging]
format = "json"
`)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)

	assert.Equal(t, MCPTransportSSE, cfg.Server.Transport)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "/prom", cfg.Server.MetricsPath)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestLoadConfig_DirectoryPrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "server:\n  port: 1111\n")
	writeFile(t, dir, "config.toml", "[server]\nport = 2222\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 1111, cfg.Server.Port)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "server:\n  transport: sse\n  port: 1111\n")

	t.Setenv("MONOLITH_SERVER_TRANSPORT", "streamable-http")
	t.Setenv("MONOLITH_SERVER_METRICS_PATH", "/m")
	t.Setenv("MONOLITH_FUNCTIONS_TIMEZONE", "America/New_York")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, MCPTransportStreamableHTTP, cfg.Server.Transport)
	assert.Equal(t, 1111, cfg.Server.Port)
	assert.Equal(t, "/m", cfg.Server.MetricsPath)
	assert.Equal(t, "America/New_York", cfg.Functions.Timezone)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "config.yaml", "server: [unterminated")
		_, err := LoadConfig(p)
		require.Error(t, err)

		var cfgErr ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "parse", cfgErr.ErrorType)
		assert.Equal(t, "config.yaml", cfgErr.FileName)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "config.ini", "x=1")
		_, err := LoadConfig(p)

		var cfgErr ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "format", cfgErr.ErrorType)
	})

	t.Run("invalid values", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "config.yaml", "server:\n  transport: carrier-pigeon\n")
		_, err := LoadConfig(p)

		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "server.transport", verrs[0].Field)
	})

	t.Run("bad environment value", func(t *testing.T) {
		t.Setenv("MONOLITH_SERVER_PORT", "eighty")
		_, err := LoadConfig("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment overrides")
	})
}
