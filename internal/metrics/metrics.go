// Package metrics exposes assembly and engine counters on a private
// Prometheus registry so that several App instances never share state.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector the application records to.
type Registry struct {
	registry *prometheus.Registry

	AssembliesTotal  *prometheus.CounterVec
	AssemblyDuration prometheus.Histogram
	ObjectsBuilt     *prometheus.CounterVec
	WarningsTotal    *prometheus.CounterVec
	EngineRunsTotal  *prometheus.CounterVec
	EngineDuration   prometheus.Histogram
	PublishedFiles   *prometheus.CounterVec
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	factory := promauto.With(r.registry)

	r.AssembliesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osmforge_assemblies_total",
			Help: "Total number of assembly runs",
		},
		[]string{"status"}, // ok, failed
	)
	r.AssemblyDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "osmforge_assembly_duration_seconds",
			Help:    "Duration of one assembly run in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)
	r.ObjectsBuilt = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osmforge_objects_built_total",
			Help: "Model objects created, by kind",
		},
		[]string{"kind"},
	)
	r.WarningsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osmforge_warnings_total",
			Help: "Non-fatal assembly warnings, by category",
		},
		[]string{"category"},
	)
	r.EngineRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osmforge_engine_runs_total",
			Help: "Simulation engine invocations, by outcome",
		},
		[]string{"outcome"}, // succeeded, failed
	)
	r.EngineDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "osmforge_engine_duration_seconds",
			Help:    "Wall time of simulation engine runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
	r.PublishedFiles = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osmforge_published_files_total",
			Help: "Run artifacts uploaded, by status",
		},
		[]string{"status"},
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// RecordAssembly records one assembly run. objects maps an object kind to the
// number created.
func (r *Registry) RecordAssembly(err error, duration time.Duration, objects map[string]int) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	r.AssembliesTotal.WithLabelValues(status).Inc()
	r.AssemblyDuration.Observe(duration.Seconds())
	for kind, n := range objects {
		r.ObjectsBuilt.WithLabelValues(kind).Add(float64(n))
	}
}

// Category pairs a warning label with the sentinel that identifies it.
type Category struct {
	Label    string
	Sentinel error
}

// RecordWarnings counts each warning under the first category it matches, or
// "other".
func (r *Registry) RecordWarnings(warnings []error, categories []Category) {
	for _, w := range warnings {
		label := "other"
		for _, c := range categories {
			if errors.Is(w, c.Sentinel) {
				label = c.Label
				break
			}
		}
		r.WarningsTotal.WithLabelValues(label).Inc()
	}
}

// RecordEngineRun records a simulation engine invocation.
func (r *Registry) RecordEngineRun(succeeded bool, duration time.Duration) {
	outcome := "succeeded"
	if !succeeded {
		outcome = "failed"
	}
	r.EngineRunsTotal.WithLabelValues(outcome).Inc()
	r.EngineDuration.Observe(duration.Seconds())
}

// RecordPublish records one artifact upload attempt.
func (r *Registry) RecordPublish(err error) {
	status := "ok"
	if err != nil {
		status = "failed"
	}
	r.PublishedFiles.WithLabelValues(status).Inc()
}
