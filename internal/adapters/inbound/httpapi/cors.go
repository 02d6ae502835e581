package httpapi

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/cors"

	"github.com/sufield/remote-access/internal/config"
	"github.com/sufield/remote-access/internal/logging"
)

// CORS returns the cross-origin stage. Preflight requests are answered here
// with 204 and never reach the router, so they succeed for any path.
//
// With a wildcard origin policy the stage is fully permissive: every response
// carries Access-Control-Allow-Origin: * whether or not the request sent an
// Origin, and every OPTIONS request is answered with 204, preflight or not.
func CORS(cfg config.CORSConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       cfg.AllowedOrigins,
		AllowedMethods:       cfg.AllowedMethods,
		AllowedHeaders:       cfg.AllowedHeaders,
		ExposedHeaders:       cfg.ExposedHeaders,
		MaxAge:               cfg.MaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
		Logger:               logging.Printf{Logger: logger, Msg: "cors"},
	})
	if !slices.Contains(cfg.AllowedOrigins, "*") {
		return c.Handler
	}

	methods := strings.Join(cfg.AllowedMethods, ",")
	return func(next http.Handler) http.Handler {
		preflight := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") != "" {
				preflight.ServeHTTP(w, r)
				return
			}

			// bare OPTIONS: answer like a preflight
			h.Set("Access-Control-Allow-Methods", methods)
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Add("Vary", "Access-Control-Request-Headers")
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			if cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
			h.Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
