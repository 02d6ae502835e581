package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sufield/remote-access/internal/adapters/inbound/httpapi"
	"github.com/sufield/remote-access/internal/config"
	"github.com/sufield/remote-access/internal/logging"
)

// Bootstrap creates and wires all application components.
func Bootstrap(cfg config.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	// Step 1: metrics registry with runtime collectors
	registry := prometheus.NewRegistry()
	if cfg.Metrics.IsEnabled() {
		if err := registry.Register(collectors.NewGoCollector()); err != nil {
			return nil, fmt.Errorf("register go collector: %w", err)
		}
		if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return nil, fmt.Errorf("register process collector: %w", err)
		}
	}

	// Step 2: router and middleware pipeline
	handler, err := httpapi.NewRouter(cfg, httpapi.RouterOptions{
		Logger:   logger,
		Registry: registry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	// Step 3: HTTP server
	server := httpapi.NewServer(cfg.HTTP, handler, logger)

	return &Application{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Handler:  handler,
		Server:   server,
	}, nil
}
