// SPDX-License-Identifier: MIT

package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "lexsimplex"

// Outcome label values of the solves counter.
const (
	outcomeOptimal   = "optimal"
	outcomeUnbound   = "unbound"
	outcomeRejected  = "rejected"
	outcomeMalformed = "malformed"
)

// Metrics groups the collectors of one Server.
type Metrics struct {
	// Solves counts POST requests by outcome.
	Solves *prometheus.CounterVec
	// Iterations observes pivots per completed solve.
	Iterations prometheus.Histogram
	// Duration observes solve wall time in seconds.
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// It panics on duplicate registration, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "solves_total",
			Help:      "Linear programs received, by outcome.",
		}, []string{"outcome"}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "solve_iterations",
			Help:      "Pivots performed per solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "solve_duration_seconds",
			Help:      "Time spent admitting and running a linear program.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.Solves, m.Iterations, m.Duration)

	return m
}
