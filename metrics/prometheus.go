package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	counters  *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// NewPrometheusRecorder registers MILO counters and latency histograms on
// the default registry. Counters are labeled by event type and action,
// latency by operation and action.
func NewPrometheusRecorder() Recorder {
	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "milo",
			Name:      "events_total",
			Help:      "intent pipeline event counters",
		},
		[]string{"type", "action"},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "milo",
			Name:      "latency_seconds",
			Help:      "intent pipeline operation latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "action"},
	)

	prometheus.MustRegister(counters, histogram)

	return &PrometheusRecorder{
		counters:  counters,
		histogram: histogram,
	}
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.counters.With(prometheus.Labels{
		"type":   name,
		"action": labels["action"],
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"operation": name,
		"action":    labels["action"],
	}).Observe(d.Seconds())
}
