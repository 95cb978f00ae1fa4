// Package server wires the approx tool service together.
//
// It builds the metrics registry, the service registry with the approx
// provider, and the Gin router with its middleware stack:
//   - recovery
//   - request metrics
//   - CORS
//   - per-IP rate limiting (when enabled)
//
// Example Usage:
//
//	cfg, err := config.Load(path)
//	srv, err := server.NewServer(cfg, logger, version)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
