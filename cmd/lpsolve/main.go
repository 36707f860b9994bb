// Command lpsolve solves linear programs from files or serves the solver
// over HTTP.
//
//	lpsolve solve problem.json
//	lpsolve solve --output yaml problem.yaml
//	lpsolve serve --addr :8000
//
// Every flag can also be set through an LPSOLVE_* environment variable
// (LPSOLVE_MAX_ITERATIONS, LPSOLVE_LOG_LEVEL, ...) or a config file given
// with --config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
