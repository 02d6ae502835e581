package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sufield/remote-access/internal/config"
	"github.com/sufield/remote-access/internal/logging"
)

// RouterOptions carries the router's collaborators.
type RouterOptions struct {
	Logger *slog.Logger

	// Registry receives the HTTP collectors and backs the metrics endpoint.
	// Nil disables metrics regardless of configuration.
	Registry *prometheus.Registry
}

// NewRouter constructs the API HTTP router.
func NewRouter(cfg config.Config, opts RouterOptions) (http.Handler, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	var metrics *Metrics
	if cfg.Metrics.IsEnabled() && opts.Registry != nil {
		m, err := NewMetrics(opts.Registry)
		if err != nil {
			return nil, err
		}
		metrics = m
	}

	r := chi.NewRouter()
	r.Use(Pipeline(cfg, logger, metrics)...)

	h := &handlers{logger: logger}
	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.methodNotAllowed)

	r.Get("/", h.welcome)
	r.Get("/healthz", h.health)
	r.Post("/api/echo", h.echo)

	if metrics != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{
			Registry: opts.Registry,
		}))
	}

	return r, nil
}
