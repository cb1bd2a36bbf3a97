package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	launchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcpi_launches_total",
		Help: "Total grid launches",
	})

	launchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mcpi_launch_failures_total",
		Help: "Total failed launches by failing operation",
	}, []string{"op"})

	samplesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcpi_samples_total",
		Help: "Total points sampled by completed launches",
	})

	hitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mcpi_hits_total",
		Help: "Total points inside the quarter circle",
	})

	launchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mcpi_launch_duration_seconds",
		Help:    "Wall time of the parallel dispatch",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
	})
)
