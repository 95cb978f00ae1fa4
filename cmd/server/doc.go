// Package main is the entry point for the approx tool server.
//
// The server exposes every approximation tool over HTTP:
//
//	GET  /                  service banner
//	GET  /health            uptime and registry stats
//	GET  /services          tool catalog (?category=math)
//	POST /services/execute  {"tool_id": "approx.sin", "params": {"x": 1}}
//	GET  /metrics           prometheus metrics
//
// Configuration:
//   - Defaults, then the -config file, then APPROX_* environment variables
//   - CLI flags override all of these
//
// Usage:
//
//	# Production mode
//	./server -config approx.toml -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
