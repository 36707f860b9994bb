package httpapi

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lexsimplex/simplex"
)

// DefaultMaxBodyBytes caps the size of a POST body.
const DefaultMaxBodyBytes int64 = 1 << 20

// Option configures a Server.
type Option func(*options)

type options struct {
	logger       logr.Logger
	registry     *prometheus.Registry
	solverOpts   []simplex.Option
	maxBodyBytes int64
	solveTimeout time.Duration
}

// WithLogger sets the request logger. Requests are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegistry registers the metrics on reg and serves it at /metrics.
// Without it the server uses a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithSolverOptions passes opts to every simplex.Solve call.
func WithSolverOptions(opts ...simplex.Option) Option {
	return func(o *options) { o.solverOpts = append(o.solverOpts, opts...) }
}

// WithMaxBodyBytes caps the POST body; n ≤ 0 keeps the default.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

// WithSolveTimeout bounds each solve; 0 means only the request context applies.
func WithSolveTimeout(d time.Duration) Option {
	return func(o *options) { o.solveTimeout = d }
}
