package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("%w: http: %w", ErrInvalidConfig, err)
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("%w: cors: allowed_origins must not be empty", ErrInvalidConfig)
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("%w: cors: max_age must be non-negative, got %d", ErrInvalidConfig, c.CORS.MaxAge)
	}
	if c.Body.LimitBytes <= 0 {
		return fmt.Errorf("%w: body: limit_bytes must be positive, got %d", ErrInvalidConfig, c.Body.LimitBytes)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("%w: rate_limit: rps must be positive, got %v", ErrInvalidConfig, c.RateLimit.RPS)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("%w: rate_limit: burst must be positive, got %d", ErrInvalidConfig, c.RateLimit.Burst)
		}
	}
	if c.Metrics.IsEnabled() && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics: path %q must start with /", ErrInvalidConfig, c.Metrics.Path)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks if HTTP configuration is valid.
func (h HTTPConfig) Validate() error {
	if h.Port < 1 || h.Port > 65535 {
		return fmt.Errorf("invalid port %d (must be 1-65535)", h.Port)
	}

	// Validate timeouts are non-negative
	if h.ReadHeaderTimeout < 0 {
		return fmt.Errorf("read_header_timeout must be non-negative, got %v", h.ReadHeaderTimeout)
	}
	if h.ReadTimeout < 0 {
		return fmt.Errorf("read_timeout must be non-negative, got %v", h.ReadTimeout)
	}
	if h.WriteTimeout < 0 {
		return fmt.Errorf("write_timeout must be non-negative, got %v", h.WriteTimeout)
	}
	if h.IdleTimeout < 0 {
		return fmt.Errorf("idle_timeout must be non-negative, got %v", h.IdleTimeout)
	}
	if h.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown_timeout must be non-negative, got %v", h.ShutdownTimeout)
	}
	return nil
}

// Validate checks the log level and format names.
func (l LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid level %q (expected: debug, info, warn, error)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (expected: text, json)", l.Format)
	}
	return nil
}
