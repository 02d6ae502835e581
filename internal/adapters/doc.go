// Package adapters contains the transport implementations around the service.
//
// Adapters translate between the envelope contract (pkg/envelope), the error
// taxonomy (internal/domain) and concrete technologies.
//
// Adapter Organization
//
//   - inbound/   - Adapters that receive external requests (the HTTP API)
//   - outbound/  - Adapters that make external calls (the HTTP client)
//
// Inbound Adapters (Driving Adapters)
//
// Example: httpapi (inbound/httpapi/)
//   - Technology: net/http with a chi router and middleware pipeline
//   - Purpose: Serves the welcome route, the echo route, health and metrics
//   - Cross-cutting: CORS (rs/cors), rate limiting (x/time/rate), Prometheus
//
// Outbound Adapters (Driven Adapters)
//
// Example: httpclient (outbound/httpclient/)
//   - Technology: net/http
//   - Purpose: Calls a running service; used by cmd/remotectl and end-to-end tests
//
// Design Principles
//
// 1. **One-Way Dependencies**: Adapters depend on domain and envelope; domain never depends on adapters
// 2. **Technology Isolation**: chi, cors and Prometheus types stay inside the adapter
// 3. **Composition Root**: Concrete wiring happens in internal/app
//
// Example Dependency Flow
//
//	cmd/server (binary)
//	    ↓ loads config, builds logger
//	app.Bootstrap(cfg, logger)
//	    ↓ creates
//	httpapi.NewRouter + httpapi.NewServer
//	    ↓ serves
//	envelope.Decode / envelope.OK
package adapters
