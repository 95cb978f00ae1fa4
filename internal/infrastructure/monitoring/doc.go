/*
Package monitoring provides Prometheus metrics for the tool service and the
console programs.

# Overview

Every Metrics value owns a private registry. The HTTP server exposes it on
/metrics; the console programs can dump it to a textfile for the
node_exporter textfile collector.

# Features

- HTTP request metrics (count, latency) labelled by route template
- Tool execution metrics (count, latency, errors)
- Console program metrics (runs, clamped inputs, evaluations)

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "approx.sin")
	// ... execute ...
	timer.Stop("success")

	metrics.RecordClamp("trig", "x")
	_ = metrics.WriteTextfile("approx.prom")
*/
package monitoring
