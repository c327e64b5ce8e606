package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"every transport", func(c *Config) { c.Server.Transport = MCPTransportSSE }, nil},
		{"port zero picks a free port", func(c *Config) { c.Server.Port = 0 }, nil},
		{"unknown transport", func(c *Config) { c.Server.Transport = "grpc" }, []string{"server.transport"}},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, []string{"server.port"}},
		{"relative metrics path", func(c *Config) { c.Server.MetricsPath = "metrics" }, []string{"server.metricsPath"}},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, []string{"logging.level"}},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, []string{"logging.format"}},
		{"bad timezone", func(c *Config) { c.Functions.Timezone = "Mars/Olympus" }, []string{"functions.timezone"}},
		{
			"collects all problems",
			func(c *Config) {
				c.Server.Transport = ""
				c.Server.Port = -1
				c.Logging.Format = ""
			},
			[]string{"server.transport", "server.port", "logging.format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("a", "is wrong")
	assert.Equal(t, "field 'a': is wrong", errs.Error())

	errs.Add("b", "is also wrong", 42)
	assert.Equal(t, "validation failed: field 'a': is wrong; field 'b': is also wrong", errs.Error())
	assert.Equal(t, 42, errs[1].Value)
}

func TestFunctionsConfig_Location(t *testing.T) {
	loc, err := FunctionsConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = FunctionsConfig{Timezone: "Asia/Tokyo"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}
