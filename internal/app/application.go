package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sufield/remote-access/internal/adapters/inbound/httpapi"
	"github.com/sufield/remote-access/internal/config"
)

// Application is the composition root that holds the wired components.
type Application struct {
	Config   config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Handler  http.Handler
	Server   *httpapi.Server
}

// Start binds the listener and begins serving in the background.
func (a *Application) Start(ctx context.Context) error {
	if err := a.Server.Start(ctx); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	a.Logger.Info(fmt.Sprintf("Server is running on %s", a.URL()), "addr", a.Server.Addr())
	return nil
}

// URL is the local address clients can reach the server on.
func (a *Application) URL() string {
	if _, port, err := net.SplitHostPort(a.Server.Addr()); err == nil {
		return "http://localhost:" + port
	}
	return fmt.Sprintf("http://localhost:%d", a.Config.HTTP.Port)
}

// Stop gracefully shuts the server down, bounded by the configured shutdown
// timeout.
func (a *Application) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.Config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Stop(ctx); err != nil {
		return err
	}
	a.Logger.Info("Server stopped")
	return nil
}

// Run starts the server and blocks until ctx is cancelled or serving fails.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		a.Logger.Info("Shutting down", "reason", context.Cause(ctx))
	case err, ok := <-a.Server.Errors():
		if ok && err != nil {
			_ = a.Stop(context.WithoutCancel(ctx))
			return fmt.Errorf("server error: %w", err)
		}
	}

	return a.Stop(context.WithoutCancel(ctx))
}
