// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records request and upstream metrics. A nil *Collector is valid
// and records nothing.
type Collector struct {
	Requests         *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetpost",
			Name:      "requests_total",
			Help:      "Relay requests by action and response status.",
		}, []string{"action", "status"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vetpost",
			Name:      "upstream_duration_seconds",
			Help:      "Latency of calls to the text and photo providers.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"upstream", "result"}),
	}
	reg.MustRegister(c.Requests, c.UpstreamDuration)
	return c
}

// IncRequest counts one relay request.
func (c *Collector) IncRequest(action, status string) {
	if c == nil || c.Requests == nil {
		return
	}
	c.Requests.WithLabelValues(action, status).Inc()
}

// ObserveUpstream records the latency of one upstream call started at start.
func (c *Collector) ObserveUpstream(upstream string, start time.Time, err error) {
	if c == nil || c.UpstreamDuration == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	c.UpstreamDuration.WithLabelValues(upstream, result).Observe(time.Since(start).Seconds())
}
