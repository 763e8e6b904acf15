package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the process metrics behind one registry
type Collector struct {
	reg *prometheus.Registry

	SnapshotsCollected prometheus.Counter
	CollectErrors      prometheus.Counter

	AnalysisRuns     prometheus.Counter
	AnalysisDuration prometheus.Histogram

	SpeedingEvents  prometheus.Counter
	MatchedArrivals prometheus.Counter
}

// NewCollector creates and registers the metric set
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		SnapshotsCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleet_snapshots_collected_total",
			Help: "Total position snapshots fetched and stored.",
		}),
		CollectErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleet_collect_errors_total",
			Help: "Total failed collection cycles.",
		}),
		AnalysisRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleet_analysis_runs_total",
			Help: "Total completed analysis runs.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fleet_analysis_duration_seconds",
			Help:    "Duration of one full analysis run.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		SpeedingEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleet_speeding_events_total",
			Help: "Total speeding runs emitted across analysis runs.",
		}),
		MatchedArrivals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleet_matched_arrivals_total",
			Help: "Total scheduled visits matched to an observed arrival.",
		}),
	}

	reg.MustRegister(
		c.SnapshotsCollected, c.CollectErrors,
		c.AnalysisRuns, c.AnalysisDuration,
		c.SpeedingEvents, c.MatchedArrivals,
	)

	return c
}

// Handler exposes the registry for mounting under /metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
