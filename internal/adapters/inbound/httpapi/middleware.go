package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sufield/remote-access/internal/config"
	"github.com/sufield/remote-access/internal/domain"
)

// Pipeline returns the ordered middleware stages that run ahead of every
// route. A nil metrics disables the metrics stage.
func Pipeline(cfg config.Config, logger *slog.Logger, metrics *Metrics) chi.Middlewares {
	stages := chi.Middlewares{
		middleware.RequestID,
		middleware.RealIP,
	}
	if metrics != nil {
		stages = append(stages, metrics.Middleware)
	}
	stages = append(stages,
		RequestLogger(logger),
		Recoverer(logger),
		CORS(cfg.CORS, logger),
	)
	if limiter := NewClientLimiter(cfg.RateLimit); limiter != nil {
		stages = append(stages, limiter.Middleware)
	}
	stages = append(stages,
		JSONBody(cfg.Body.LimitBytes),
		middleware.GetHead,
	)
	return stages
}

// RequestLogger logs one line per request and echoes the request id header.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := middleware.GetReqID(r.Context())
			if reqID != "" {
				w.Header().Set(middleware.RequestIDHeader, reqID)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				level := slog.LevelInfo
				if status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
				logger.LogAttrs(r.Context(), level, "http request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
					slog.String("remote", r.RemoteAddr),
					slog.String("request_id", reqID),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// Recoverer turns a handler panic into a 500 envelope.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// the server suppresses the stack trace for this one
					panic(rec)
				}
				logger.Error("panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", middleware.GetReqID(r.Context()),
					"stack", string(debug.Stack()),
				)
				writeError(w, domain.Internal(fmt.Errorf("panic: %v", rec)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
