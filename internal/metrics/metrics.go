package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome classifies a finished tool call.
type Outcome string

const (
	// OutcomeSuccess is a call whose envelope (or discovery payload) succeeded.
	OutcomeSuccess Outcome = "success"
	// OutcomeEnvelopeError is a call that completed with success=false.
	OutcomeEnvelopeError Outcome = "envelope_error"
	// OutcomePipelineError is a call rejected by the dispatch pipeline
	// (unknown tool, invalid arguments, implementation fault).
	OutcomePipelineError Outcome = "pipeline_error"
)

// UnknownTool is the tool label used for names that are not registered.
const UnknownTool = "unknown"

// Recorder holds the Prometheus collectors of one server instance. Every
// Recorder owns its registry, so instances never collide in tests.
//
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	ToolCalls        *prometheus.CounterVec
	ToolCallDuration *prometheus.HistogramVec
	CatalogFunctions prometheus.Gauge
}

// NewRecorder creates a recorder with the tool call collectors plus the
// standard Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monolith_tool_calls_total",
				Help: "Total number of tool calls by tool and outcome",
			},
			[]string{"tool", "outcome"},
		),
		ToolCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "monolith_tool_call_duration_seconds",
				Help:    "Tool call duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"tool"},
		),
		CatalogFunctions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "monolith_catalog_functions",
				Help: "Number of functions registered in the catalog",
			},
		),
	}
}

// ObserveCall records one finished tool call.
func (r *Recorder) ObserveCall(tool string, outcome Outcome, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.ToolCalls.WithLabelValues(tool, string(outcome)).Inc()
	r.ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// SetCatalogSize publishes the number of registered functions.
func (r *Recorder) SetCatalogSize(n int) {
	if r == nil {
		return
	}
	r.CatalogFunctions.Set(float64(n))
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry, e.g. for gathering in tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
