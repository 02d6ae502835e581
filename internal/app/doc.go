// Package app contains the application's composition root.
// It wires configuration, logging, metrics and the HTTP adapter together and
// exposes a small Application type the server binary runs.
//
// Responsibilities
//   - Bootstrap(cfg, logger) builds the Prometheus registry, the router and the
//     HTTP server, and returns a wired Application.
//   - Application.Run serves until its context is cancelled, then shuts the
//     server down within the configured shutdown timeout.
//
// Files
// - application.go
//   - Application: holds references to the bootstrapped components.
//   - Start/Stop/Run drive the server lifecycle.
//
// - bootstrap.go
//   - Bootstrap(cfg, logger): performs the full composition flow.
//
// Architectural notes
//   - Configuration is loaded by the caller (cmd/server); this package only
//     consumes a ready config.Config.
//   - Keep transport details in internal/adapters; app only decides what to
//     construct and in which order.
package app
