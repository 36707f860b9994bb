package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexsimplex/lpio"
	"github.com/katalvlaran/lexsimplex/simplex"
)

var errNotSolved = errors.New("lpsolve: no optimal solution")

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the linear program in FILE (.json, .yaml, .yml; - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	cmd.Flags().StringP(keyOutput, "o", "json", "response encoding: json or yaml")
	cmd.Flags().String(keyInputFormat, "json", "encoding of stdin when FILE is -")

	return cmd
}

// runSolve prints the response record. Unbound is a successful run; an
// Error record makes the command fail after printing it.
func runSolve(cmd *cobra.Command, args []string) error {
	cfg, log, sync, err := setup(cmd)
	if err != nil {
		return err
	}
	defer sync()

	var p simplex.Problem
	if args[0] == "-" {
		p, err = lpio.Decode(cmd.InOrStdin(), cfg.InputFormat)
	} else {
		p, err = lpio.DecodeFile(args[0])
	}
	if err != nil {
		return err
	}
	log.V(1).Info("problem loaded", "source", args[0], "rows", p.Rows(), "cols", p.Cols())

	opts := append(cfg.solverOptions(), simplex.WithLogger(log.WithName("simplex")))
	res, solveErr := simplex.Solve(cmd.Context(), p, opts...)
	resp := lpio.FromResult(res, solveErr)
	if err := lpio.Encode(cmd.OutOrStdout(), resp, cfg.Output); err != nil {
		return err
	}

	if solveErr != nil {
		log.Info("solve failed", "kind", simplex.KindOf(solveErr))
		return fmt.Errorf("%w: %w", errNotSolved, solveErr)
	}
	log.Info("solve finished", "state", res.State.String(), "iterations", res.Iterations, "objective", res.Objective)

	return nil
}
