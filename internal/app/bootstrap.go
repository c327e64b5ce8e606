package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/romellogoodman/monolith/internal/config"
	"github.com/romellogoodman/monolith/pkg/logging"
)

// Application represents the main application structure that bootstraps and
// runs the monolith MCP server.
//
// Example usage:
//
//	cfg := app.NewConfig(false, "")
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	return application.Run(ctx)
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance with the provided configuration.
// This function performs the complete bootstrap sequence:
//
//  1. Configures logging to stderr (stdout belongs to the stdio transport)
//  2. Loads the configuration file and environment overrides
//  3. Applies command line overrides and re-validates
//  4. Initializes the function registry, router, metrics and server
func NewApplication(cfg *Config) (*Application, error) {
	logOutput := cfg.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}

	bootLevel := logging.LevelInfo
	if cfg.Debug {
		bootLevel = logging.LevelDebug
	}
	logging.InitForCLI(bootLevel, logOutput)

	if cfg.Settings == nil {
		settings, err := loadSettings(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg.Settings = &settings
	}

	cfg.applyOverrides(cfg.Settings)
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	initLogging(cfg.Settings.Logging, logOutput)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

func loadSettings(configPath string) (config.Config, error) {
	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			logging.Warn("Bootstrap", "Using built-in defaults: %v", err)
			return config.LoadConfig("")
		}
		configPath = defaultPath
	}
	return config.LoadConfig(configPath)
}

func initLogging(cfg config.LoggingConfig, output io.Writer) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	logging.InitWithFormat(level, cfg.Format, output)
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Settings returns the effective configuration.
func (a *Application) Settings() config.Config {
	return *a.config.Settings
}

// Run serves MCP until ctx is cancelled, a termination signal arrives or,
// for stdio, the client closes its input.
func (a *Application) Run(ctx context.Context) error {
	return runServer(ctx, a.services)
}
