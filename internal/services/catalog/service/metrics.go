package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "coursedex"

// resultOK labels a successful query; failures use the error code name
const resultOK = "ok"

var (
	buildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "build_duration_seconds",
		Help:      "Time to load a batch and build its indices.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	offeringsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "offerings",
		Help:      "Offerings in the published catalog.",
	})

	conflictsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "conflicts",
		Help:      "Term and section keys claimed by more than one course.",
	})

	rowsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "rows_rejected_total",
		Help:      "Source rows dropped because the course code had no subject separator.",
	}, []string{"source"})

	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "queries_total",
		Help:      "Catalog queries by operation and outcome.",
	}, []string{"op", "result"})
)
