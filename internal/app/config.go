package app

import (
	"io"

	"github.com/romellogoodman/monolith/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug forces debug logging regardless of the configured level.
	Debug bool

	// Custom configuration path (optional). A file or a directory; when
	// empty the default ~/.config/monolith directory is used.
	ConfigPath string

	// Overrides set from command line flags. Zero values leave the loaded
	// configuration untouched.
	Transport string
	Host      string
	Port      int

	// Streams used by the stdio transport and the logger. nil selects the
	// process streams; logs always default to stderr.
	Stdin     io.Reader
	Stdout    io.Writer
	LogOutput io.Writer

	// Version is reported by the MCP server during initialization.
	Version string

	// Settings is the loaded configuration. When set before bootstrap,
	// loading from disk is skipped.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// applyOverrides copies non-zero flag values onto the loaded settings.
func (c *Config) applyOverrides(settings *config.Config) {
	if c.Transport != "" {
		settings.Server.Transport = c.Transport
	}
	if c.Host != "" {
		settings.Server.Host = c.Host
	}
	if c.Port != 0 {
		settings.Server.Port = c.Port
	}
	if c.Debug {
		settings.Logging.Level = "debug"
	}
}
