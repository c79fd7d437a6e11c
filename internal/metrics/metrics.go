// Package metrics counts batch conversions for the kepler tools.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the conversion metrics of one run on its own registry.
type Recorder struct {
	reg         *prometheus.Registry
	conversions *prometheus.CounterVec
	failures    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// New returns a Recorder with all its collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kepler_conversions_total",
				Help: "Total number of successful conversions.",
			},
			[]string{"direction", "class"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kepler_conversion_failures_total",
				Help: "Total number of rejected conversions.",
			},
			[]string{"direction", "reason"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kepler_batch_duration_seconds",
				Help:    "Wall time of a batch run in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"direction"},
		),
	}
	r.reg.MustRegister(r.conversions, r.failures, r.duration)
	return r
}

// Converted records one successful conversion of an orbit of the given class.
func (r *Recorder) Converted(direction, class string) {
	r.conversions.WithLabelValues(direction, class).Inc()
}

// Failed records one rejected conversion.
func (r *Recorder) Failed(direction, reason string) {
	r.failures.WithLabelValues(direction, reason).Inc()
}

// ObserveBatch records the wall time of a batch started at start.
func (r *Recorder) ObserveBatch(direction string, start time.Time) {
	r.duration.WithLabelValues(direction).Observe(time.Since(start).Seconds())
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteTextfile dumps the metrics in the text exposition format, for the node exporter
// textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
