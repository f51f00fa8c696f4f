// Package metrics exposes Prometheus instrumentation for the refresh
// pipeline and the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DownloadFailures counts per-ticker price downloads that were omitted
	// from a price table, labeled by data source. This is the observable
	// surface for the "silently omitted tickers" policy.
	DownloadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketpulse",
		Name:      "price_download_failures_total",
		Help:      "Per-ticker price downloads omitted from the price table.",
	}, []string{"source"})

	// RefreshDuration observes how long a full refresh of each dataset takes.
	RefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marketpulse",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of dataset refreshes.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"dataset"})

	// BreadthEligible tracks the eligible constituent count of the latest
	// breadth snapshot.
	BreadthEligible = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "marketpulse",
		Name:      "breadth_eligible_constituents",
		Help:      "Eligible constituents in the latest breadth snapshot.",
	})

	// CurveObservations tracks how many long-form curve points the last
	// treasury refresh persisted.
	CurveObservations = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "marketpulse",
		Name:      "treasury_curve_points",
		Help:      "Curve points persisted by the last treasury refresh.",
	})

	// HTTPRequests counts served HTTP requests by method, route, and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketpulse",
		Name:      "http_requests_total",
		Help:      "HTTP requests served.",
	}, []string{"method", "path", "status"})
)
