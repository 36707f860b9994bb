// SPDX-License-Identifier: MIT

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lexsimplex/lpio"
	"github.com/katalvlaran/lexsimplex/simplex"
)

const (
	greeting      = "Hello world"
	preflightBody = "Options"
)

// Server is the HTTP front end of the solver.
type Server struct {
	mux     *http.ServeMux
	opts    options
	metrics *Metrics
}

// New builds a Server. Metrics are registered immediately.
func New(opts ...Option) *Server {
	o := options{
		logger:       logr.Discard(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	s := &Server{
		mux:     http.NewServeMux(),
		opts:    o,
		metrics: NewMetrics(o.registry),
	}
	s.mux.HandleFunc("POST /{$}", s.handleSolve)
	s.mux.HandleFunc("GET /{$}", s.handleHello)
	s.mux.HandleFunc("OPTIONS /{$}", s.handleOptions)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{}))

	return s
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w.Header())
	s.mux.ServeHTTP(w, r)
}

func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "*")
	h.Set("Access-Control-Allow-Credentials", "true")
}

func (s *Server) handleHello(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, greeting)
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, preflightBody)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	log := s.opts.logger.WithValues("remote", r.RemoteAddr)

	p, err := lpio.Decode(http.MaxBytesReader(w, r.Body, s.opts.maxBodyBytes), lpio.JSON)
	if err != nil {
		s.metrics.Solves.WithLabelValues(outcomeMalformed).Inc()
		log.V(1).Info("malformed request", "reason", err.Error())
		s.writeJSON(w, http.StatusBadRequest, lpio.ErrorResponse(err))
		return
	}

	ctx := r.Context()
	if s.opts.solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.solveTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := simplex.Solve(ctx, p, s.opts.solverOpts...)
	s.metrics.Duration.Observe(time.Since(start).Seconds())

	status := http.StatusOK
	switch {
	case err != nil:
		s.metrics.Solves.WithLabelValues(outcomeRejected).Inc()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		log.V(1).Info("linear program rejected", "kind", simplex.KindOf(err), "reason", err.Error())
	case res.State == simplex.Unbound:
		s.metrics.Solves.WithLabelValues(outcomeUnbound).Inc()
		s.metrics.Iterations.Observe(float64(res.Iterations))
		log.V(1).Info("linear program unbound", "rows", p.Rows(), "cols", p.Cols(), "iterations", res.Iterations)
	default:
		s.metrics.Solves.WithLabelValues(outcomeOptimal).Inc()
		s.metrics.Iterations.Observe(float64(res.Iterations))
		log.V(1).Info("linear program solved", "rows", p.Rows(), "cols", p.Cols(), "iterations", res.Iterations, "objective", res.Objective)
	}

	s.writeJSON(w, status, lpio.FromResult(res, err))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.opts.logger.Error(err, "failed to write response")
	}
}

// ListenAndServe serves h on addr until ctx is done, then shuts down
// gracefully within shutdownTimeout.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, shutdownTimeout time.Duration, log logr.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}
