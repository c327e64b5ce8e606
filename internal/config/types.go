package config

// Config is the top-level configuration of the monolith server.
type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server" json:"server"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging" json:"logging"`
	Functions FunctionsConfig `yaml:"functions" toml:"functions" json:"functions"`
}

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	// Transport is one of stdio, sse or streamable-http.
	Transport string `yaml:"transport" toml:"transport" json:"transport" envconfig:"TRANSPORT"`
	// Host and Port are only used by the HTTP based transports.
	Host string `yaml:"host" toml:"host" json:"host" envconfig:"HOST"`
	Port int    `yaml:"port" toml:"port" json:"port" envconfig:"PORT"`
	// MetricsPath is where Prometheus metrics are served next to the HTTP transports.
	MetricsPath string `yaml:"metricsPath" toml:"metricsPath" json:"metricsPath" envconfig:"METRICS_PATH"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" toml:"format" json:"format" envconfig:"FORMAT"`
}

// FunctionsConfig holds settings that affect function behavior.
type FunctionsConfig struct {
	// Timezone is the IANA zone used by the date functions when an input
	// carries no offset of its own.
	Timezone string `yaml:"timezone" toml:"timezone" json:"timezone" envconfig:"TIMEZONE"`
}

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport served on /mcp.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard input/output transport.
	MCPTransportStdio = "stdio"
)

// Transports lists every supported transport.
var Transports = []string{MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP}

// LogFormats lists the accepted logging formats.
var LogFormats = []string{"text", "json"}
