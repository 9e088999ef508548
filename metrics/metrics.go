// Package metrics exposes Prometheus instrumentation for segmentation graph
// builds. A Recorder plugs into cutgraph through cutgraph.WithObserver.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvseg/cutgraph"
)

const namespace = "lvseg"

// Pruning reasons used as the "reason" label of EdgesPruned.
const (
	ReasonInvalid = "invalid"
	ReasonDepth   = "depth"
)

// Recorder holds all build metrics.
type Recorder struct {
	BuildsTotal       *prometheus.CounterVec
	EdgesEmitted      *prometheus.CounterVec
	EdgesPruned       *prometheus.CounterVec
	AngleFallbacks    prometheus.Counter
	RelationsRepaired prometheus.Counter
	BuildDuration     *prometheus.HistogramVec
}

var _ cutgraph.Observer = (*Recorder)(nil)

// NewRecorder creates the metrics and registers them with reg.
// It panics if a metric with the same name is already registered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		BuildsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "builds_total",
				Help:      "Total number of successful graph builds by mode",
			},
			[]string{"mode"},
		),
		EdgesEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edges_emitted_total",
				Help:      "Total number of edges emitted by mode",
			},
			[]string{"mode"},
		),
		EdgesPruned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edges_pruned_total",
				Help:      "Total number of lattice candidates dropped by reason",
			},
			[]string{"reason"},
		),
		AngleFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "angle_fallbacks_total",
				Help:      "Total number of emitted edges whose angle weight is the fallback",
			},
		),
		RelationsRepaired: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relations_repaired_total",
				Help:      "Total number of relations synthesized by connectivity repair",
			},
		),
		BuildDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "build_duration_seconds",
				Help:      "Graph build duration in seconds by mode",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"mode"},
		),
	}
}

// ObserveBuild records one build summary.
func (r *Recorder) ObserveBuild(s cutgraph.Stats, elapsed time.Duration) {
	mode := string(s.Mode)
	r.BuildsTotal.WithLabelValues(mode).Inc()
	r.EdgesEmitted.WithLabelValues(mode).Add(float64(s.Emitted))
	r.BuildDuration.WithLabelValues(mode).Observe(elapsed.Seconds())

	switch s.Mode {
	case cutgraph.ModeGrid:
		r.EdgesPruned.WithLabelValues(ReasonInvalid).Add(float64(s.PrunedInvalid))
		r.EdgesPruned.WithLabelValues(ReasonDepth).Add(float64(s.PrunedDepth))
		r.AngleFallbacks.Add(float64(s.AngleFallbacks))
	case cutgraph.ModeRelations:
		r.RelationsRepaired.Add(float64(s.Repaired))
	}
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format, for the node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
