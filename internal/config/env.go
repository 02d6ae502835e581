package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ParsePort returns the port held by raw, or ok=false when raw is empty, not an
// integer, or outside 1-65535. Callers fall back to the next source instead of
// failing, which is how PORT has always behaved for this service.
func ParsePort(raw string) (port int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 || p > 65535 {
		return 0, false
	}
	return p, true
}

// applyEnvOverrides overrides config values with environment variables if set.
// PORT is lenient; every other variable returns an error for invalid values to fail fast.
func applyEnvOverrides(cfg *Config) error {
	// HTTP configuration
	if p, ok := ParsePort(os.Getenv("PORT")); ok {
		cfg.HTTP.Port = p
	}
	if host := strings.TrimSpace(os.Getenv("HOST")); host != "" {
		cfg.HTTP.Host = host
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"HTTP_READ_HEADER_TIMEOUT", &cfg.HTTP.ReadHeaderTimeout},
		{"HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout},
		{"HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout},
		{"HTTP_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout},
		{"HTTP_SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout},
	}
	for _, d := range durations {
		raw := os.Getenv(d.name)
		if raw == "" {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", d.name, raw, err)
		}
		*d.dst = v
	}

	// CORS configuration
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("CORS_ALLOWED_METHODS"); v != "" {
		cfg.CORS.AllowedMethods = splitList(v)
	}
	if v := os.Getenv("CORS_ALLOWED_HEADERS"); v != "" {
		cfg.CORS.AllowedHeaders = splitList(v)
	}
	if v := os.Getenv("CORS_MAX_AGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CORS_MAX_AGE %q: %w", v, err)
		}
		cfg.CORS.MaxAge = n
	}

	// Body parsing
	if v := os.Getenv("BODY_LIMIT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid BODY_LIMIT %q: %w", v, err)
		}
		cfg.Body.LimitBytes = n
	}

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		cfg.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		cfg.RateLimit.RPS = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		cfg.RateLimit.Burst = n
	}

	// Metrics
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED %q: %w", v, err)
		}
		cfg.Metrics.Enabled = &b
	}
	if v := os.Getenv("METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}

	// Logging
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(strings.TrimSpace(v))
	}

	return nil
}

// splitList splits a comma-separated value and drops empty items
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseBool parses boolean environment variables
// Accepts: "true", "1", "yes", "on" for true; "false", "0", "no", "off" for false
func parseBool(value string) (bool, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", value)
	}
}
