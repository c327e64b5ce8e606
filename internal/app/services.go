package app

import (
	"fmt"

	"github.com/romellogoodman/monolith/internal/api"
	"github.com/romellogoodman/monolith/internal/dispatch"
	"github.com/romellogoodman/monolith/internal/functions"
	"github.com/romellogoodman/monolith/internal/metatools"
	"github.com/romellogoodman/monolith/internal/metrics"
	"github.com/romellogoodman/monolith/internal/server"
	"github.com/romellogoodman/monolith/pkg/logging"
)

// Services holds all initialized components of the application.
//
// Initialization order follows the data flow: the function registry owns the
// catalog, the discovery provider reads it, the router dispatches to both and
// the server exposes the router.
type Services struct {
	Registry  *functions.Registry
	Discovery *metatools.Provider
	Router    *dispatch.Router
	Metrics   *metrics.Recorder
	Server    *server.Server
}

// InitializeServices creates every component from cfg.Settings.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.Settings == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	settings := cfg.Settings

	loc, err := settings.Functions.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}

	registry, err := functions.NewRegistry(functions.Options{Location: loc})
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder()
	recorder.SetCatalogSize(registry.Store().Len())

	discovery := metatools.NewProvider(registry.Store())

	router, err := dispatch.NewRouter(
		[]api.ToolProvider{discovery, registry},
		dispatch.WithMetrics(recorder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	srv := server.New(server.Config{
		Transport:   settings.Server.Transport,
		Host:        settings.Server.Host,
		Port:        settings.Server.Port,
		MetricsPath: settings.Server.MetricsPath,
		Version:     cfg.Version,
		Stdin:       cfg.Stdin,
		Stdout:      cfg.Stdout,
	}, router, recorder)

	logging.Info("Bootstrap", "Initialized %d tools (%d functions)", len(router.Tools()), registry.Store().Len())

	return &Services{
		Registry:  registry,
		Discovery: discovery,
		Router:    router,
		Metrics:   recorder,
		Server:    srv,
	}, nil
}
