// Package service provides the tool registry behind the HTTP service and
// the eval command.
//
// The registry keeps a catalog of providers keyed by service ID and routes
// "service.tool" IDs to the matching provider.
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Tool execution with context passing
//   - Per-tool call, duration and error metrics
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry(logger, metrics)
//	registry.Register(approx.NewDefaultProvider())
//	result, err := registry.Execute(ctx, "approx.sin", params, appCtx)
package service
