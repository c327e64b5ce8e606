package config

const (
	DefaultTransport   = MCPTransportStdio
	DefaultHost        = "localhost"
	DefaultPort        = 8090
	DefaultMetricsPath = "/metrics"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultTimezone    = "UTC"
)

// GetDefaultConfig returns the configuration used when no file or
// environment override is present.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Transport:   DefaultTransport,
			Host:        DefaultHost,
			Port:        DefaultPort,
			MetricsPath: DefaultMetricsPath,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Functions: FunctionsConfig{
			Timezone: DefaultTimezone,
		},
	}
}
