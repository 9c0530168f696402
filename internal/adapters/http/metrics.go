package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

var (
	solveRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "countdown",
		Subsystem: "http",
		Name:      "solve_requests_total",
		Help:      "Solve requests by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	solveNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "countdown",
		Name:      "solver_nodes",
		Help:      "Nodes explored per solve request.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 10),
	}, []string{"strategy"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "countdown",
		Name:      "solver_duration_seconds",
		Help:      "Wall time per solve request.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"strategy"})
)

func observeSolve(s domain.Strategy, outcome string, st ports.Stats) {
	solveRequests.WithLabelValues(s.String(), outcome).Inc()
	solveNodes.WithLabelValues(s.String()).Observe(float64(st.Nodes))
	solveDuration.WithLabelValues(s.String()).Observe(st.Duration.Seconds())
}
