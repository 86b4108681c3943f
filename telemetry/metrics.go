// Package telemetry exposes the progress of a search as Prometheus metrics.
package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shortexpr"

// Metrics holds the collectors updated during a search.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	levelOutputs  *prometheus.GaugeVec
	levelDuration prometheus.Histogram
	levelsBuilt   prometheus.Counter
	explored      prometheus.Counter
	solutions     *prometheus.CounterVec
}

// New creates the collectors and registers them against reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		levelOutputs: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "level",
			Name:      "outputs",
			Help:      "Number of distinct outputs retained for each expression length",
		}, []string{"length"}),
		levelDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "level",
			Name:      "build_duration_seconds",
			Help:      "Time to build one level",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 12),
		}),
		levelsBuilt: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "level",
			Name:      "built_total",
			Help:      "Number of levels built",
		}),
		explored: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "explored_outputs_total",
			Help:      "Number of outputs retained across all levels",
		}),
		solutions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_total",
			Help:      "Number of solutions found, by expression length",
		}, []string{"length"}),
	}
}

// ObserveLevel records that the level of the given length was built.
func (m *Metrics) ObserveLevel(length, outputs int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.levelOutputs.WithLabelValues(strconv.Itoa(length)).Set(float64(outputs))
	m.levelDuration.Observe(elapsed.Seconds())
	m.levelsBuilt.Inc()
	m.explored.Add(float64(outputs))
}

// ObserveSolution records a solution of the given length. It is safe for concurrent use.
func (m *Metrics) ObserveSolution(length int) {
	if m == nil {
		return
	}
	m.solutions.WithLabelValues(strconv.Itoa(length)).Inc()
}
