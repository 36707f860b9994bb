// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"github.com/go-logr/logr"
)

// Defaults (single source of truth).
const (
	// DefaultTolerance is the threshold below which a relative cost counts as
	// negative (rc < -tol) and above which a pivot-column entry counts as
	// positive (a > tol). Zero gives the exact rule.
	DefaultTolerance = 0.0

	// DefaultMaxIterations of 0 means "use the basis-count bound C(N, M)".
	DefaultMaxIterations = 0
)

const (
	panicToleranceInvalid     = "simplex: WithTolerance: tol must be finite, non-negative"
	panicMaxIterationsInvalid = "simplex: WithMaxIterations: n must be non-negative"
)

// debugLevel is the logr verbosity used for per-pivot traces.
const debugLevel = 1

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the engine configuration. Fields are unexported; use WithX.
type Options struct {
	tolerance     float64
	maxIterations int
	logger        logr.Logger
}

// defaultOptions returns the zero-configuration engine settings.
func defaultOptions() Options {
	return Options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		logger:        logr.Discard(),
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTolerance sets the sign tolerance for pivot selection.
// Panics if tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the number of pivots Run may perform.
// 0 restores the C(N, M) default. Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger routes engine traces to l. Pivots are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// BasisBound returns C(n, m), the number of candidate bases of an m×n
// tableau, saturating at math.MaxInt. It is the default pivot budget.
func BasisBound(n, m int) int {
	if m < 0 || n < 0 || m > n {
		return 0
	}
	k := m
	if n-m < k {
		k = n - m
	}
	result := 1
	for i := 1; i <= k; i++ {
		f := n - k + i
		if result > math.MaxInt/f {
			return math.MaxInt
		}
		// result*f is divisible by i: it equals C(n-k+i, i) * i
		result = result * f / i
	}

	return result
}
