package engine

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the Prometheus instrumentation Compute reports through.
// Each Recorder owns a private registry (rather than the package-level
// default one) so constructing several — one per test, one per
// algorithm — never collides on a duplicate-registration panic.
type Recorder struct {
	registry           *prometheus.Registry
	augmentationRounds *prometheus.CounterVec
	edgesDeleted       *prometheus.CounterVec
	rankHistogram      *prometheus.GaugeVec
}

// NewRecorder builds a Recorder under the given metrics namespace.
func NewRecorder(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		augmentationRounds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "matching",
				Name:      "augmentation_rounds_total",
				Help:      "Total number of max-flow augmentation rounds run",
			},
			[]string{"algorithm"},
		),
		edgesDeleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "matching",
				Name:      "edges_deleted_total",
				Help:      "Total number of typed edges deleted between augmentation rounds",
			},
			[]string{"algorithm", "label"},
		),
		rankHistogram: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "matching",
				Name:      "rank_histogram",
				Help:      "Number of applicants matched at each preference rank",
			},
			[]string{"algorithm", "rank"},
		),
	}
}

// NewNoopRecorder returns a Recorder with its own isolated registry and
// no attached exporter: Compute always has a valid Recorder to call
// into, whether or not a caller wants to scrape it.
func NewNoopRecorder() *Recorder { return NewRecorder("") }

// Registry exposes the private registry, for a caller that wants to
// mount it behind an HTTP /metrics handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// RecordAugmentationRound increments the round counter for algorithm.
func (r *Recorder) RecordAugmentationRound(algorithm string) {
	r.augmentationRounds.WithLabelValues(algorithm).Inc()
}

// RecordEdgesDeleted adds n to the deleted-edge counter for algorithm
// and the given typed-edge label (e.g. "T->S", "U->S").
func (r *Recorder) RecordEdgesDeleted(algorithm, label string, n int) {
	r.edgesDeleted.WithLabelValues(algorithm, label).Add(float64(n))
}

// SetRankHistogram publishes hist (1-indexed by rank) as a gauge vector.
func (r *Recorder) SetRankHistogram(algorithm string, hist []int) {
	for i, count := range hist {
		r.rankHistogram.WithLabelValues(algorithm, strconv.Itoa(i+1)).Set(float64(count))
	}
}
