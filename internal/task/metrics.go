package task

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Unit outcomes recorded in the units counter.
const (
	outcomeProcessed = "processed"
	outcomeSkipped   = "skipped"
	outcomeFailed    = "failed"
)

var (
	prometheusMetricsInitOnce sync.Once

	prometheusBatchRuns     *prometheus.CounterVec
	prometheusBatchUnits    *prometheus.CounterVec
	prometheusBatchDuration prometheus.Histogram
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(func() {
		prometheusBatchRuns = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "items",
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Number of process-all runs, by result",
		}, []string{"result"})

		prometheusBatchUnits = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "items",
			Subsystem: "batch",
			Name:      "units_total",
			Help:      "Number of per-item units, by outcome",
		}, []string{"outcome"})

		prometheusBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "items",
			Subsystem: "batch",
			Name:      "duration_seconds",
			Help:      "Time taken by a process-all run",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		})
	})
}

func recordRun(summary RunSummary, err error) {
	if err != nil {
		prometheusBatchRuns.WithLabelValues("error").Inc()
		return
	}

	prometheusBatchRuns.WithLabelValues("ok").Inc()
	prometheusBatchUnits.WithLabelValues(outcomeProcessed).Add(float64(summary.Processed))
	prometheusBatchUnits.WithLabelValues(outcomeSkipped).Add(float64(summary.Skipped))
	prometheusBatchUnits.WithLabelValues(outcomeFailed).Add(float64(summary.Failed))
	prometheusBatchDuration.Observe(summary.Duration.Seconds())
}
