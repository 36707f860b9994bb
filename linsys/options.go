package linsys

import (
	"math"

	"github.com/go-logr/logr"
)

// DefaultTolerance treats only exact zeros as unusable pivots.
const DefaultTolerance = 0.0

const panicToleranceInvalid = "linsys: WithTolerance: tol must be finite, non-negative"

// Option configures Solve.
type Option func(*Options)

// Options holds the solver configuration.
type Options struct {
	tolerance float64
	logger    logr.Logger
}

func gatherOptions(opts ...Option) Options {
	o := Options{tolerance: DefaultTolerance, logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTolerance makes entries with |a| ≤ tol unusable as pivots.
// Panics if tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithLogger routes pivot traces (V(1)) to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}
