// Package metrics exposes the client's operational counters over the
// Prometheus default registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsSent counts mailbox gateway request datagrams.
	RequestsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "etg1510_requests_sent_total",
		Help: "Mailbox gateway request datagrams sent.",
	})

	// Timeouts counts exchanges that ended without a response.
	Timeouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "etg1510_timeouts_total",
		Help: "Mailbox gateway exchanges that timed out.",
	})

	// DiscoveredIndices is the number of OD indices registered by the last
	// discovery run.
	DiscoveredIndices = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "etg1510_discovered_indices",
		Help: "OD indices registered by the last discovery run.",
	})

	// LastPollDuration is the wall time of the last full iteration pass.
	LastPollDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "etg1510_last_poll_duration_seconds",
		Help: "Duration of the last full iteration pass.",
	})
)

// Serve blocks serving the default registry on addr under /metrics.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
