// Package http provides the HTTP handlers of the tool service.
//
// Endpoints:
//   - Health: / and /health
//   - Services: GET /services?category=math, POST /services/execute
//
// Tool results are answered with 200 whether the tool accepted its input or
// not; a rejected input has success=false and an error message. Unknown
// services are 404, malformed requests 400.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, logger, version)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
