package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics on a private registry, so that
// several instances (tests, CLI runs) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Console program metrics
	ProgramRuns   *prometheus.CounterVec
	ClampedInputs *prometheus.CounterVec
	Evaluations   *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time
}

// NewMetrics creates a metrics collector with its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "approx_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "approx_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "approx_tool_calls_total",
				Help: "Total number of tool executions",
			},
			[]string{"tool", "status"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "approx_tool_duration_seconds",
				Help:    "Tool execution duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"tool"},
		),
		ToolErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "approx_tool_errors_total",
				Help: "Total number of failed tool executions",
			},
			[]string{"tool", "error_type"},
		),

		ProgramRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "approx_program_runs_total",
				Help: "Total number of console program runs",
			},
			[]string{"program", "status"},
		),
		ClampedInputs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "approx_clamped_inputs_total",
				Help: "Inputs replaced by a default because they were out of range",
			},
			[]string{"program", "param"},
		),
		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "approx_evaluations_total",
				Help: "Approximations computed by the console programs",
			},
			[]string{"program", "function"},
		),
	}

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "approx_uptime_seconds",
			Help: "Seconds since the metrics collector was created",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// WriteTextfile dumps the registry to path in the node_exporter textfile
// format. The console programs use it since they do not serve HTTP.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// RecordHTTPRequest records HTTP request metrics.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordToolCall records a tool execution.
func (m *Metrics) RecordToolCall(tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordToolError records a tool failure.
func (m *Metrics) RecordToolError(tool, errorType string) {
	m.ToolErrors.WithLabelValues(tool, errorType).Inc()
}

// RecordProgramRun records a finished console program.
func (m *Metrics) RecordProgramRun(program, status string) {
	m.ProgramRuns.WithLabelValues(program, status).Inc()
}

// RecordClamp records an input that was replaced by its default.
func (m *Metrics) RecordClamp(program, param string) {
	m.ClampedInputs.WithLabelValues(program, param).Inc()
}

// RecordEvaluation records one approximation printed by a program.
func (m *Metrics) RecordEvaluation(program, function string) {
	m.Evaluations.WithLabelValues(program, function).Inc()
}
