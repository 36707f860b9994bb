package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexsimplex/httpapi"
	"github.com/katalvlaran/lexsimplex/simplex"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	fs := cmd.Flags()
	fs.String(keyAddr, ":8000", "listen address")
	fs.Duration(keySolveTimeout, 0, "per-request solve budget, 0 for none")
	fs.Int64(keyMaxBodyBytes, httpapi.DefaultMaxBodyBytes, "largest accepted request body")
	fs.Duration(keyShutdown, 10*time.Second, "graceful shutdown budget")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, sync, err := setup(cmd)
	if err != nil {
		return err
	}
	defer sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	solverOpts := append(cfg.solverOptions(), simplex.WithLogger(log.WithName("simplex")))
	srv := httpapi.New(
		httpapi.WithLogger(log.WithName("http")),
		httpapi.WithRegistry(reg),
		httpapi.WithSolverOptions(solverOpts...),
		httpapi.WithMaxBodyBytes(cfg.MaxBodyBytes),
		httpapi.WithSolveTimeout(cfg.SolveTimeout),
	)

	return httpapi.ListenAndServe(cmd.Context(), cfg.Addr, srv, cfg.Shutdown, log)
}
