package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lpsolve",
		Short:        "Lexicographic tableau simplex solver",
		SilenceUsage: true,
	}
	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(newSolveCmd(), newServeCmd())

	return root
}

// setup resolves the configuration and logger of cmd. cmd.Flags() already
// carries the persistent flags of its parents once cobra has parsed them.
func setup(cmd *cobra.Command) (Config, logr.Logger, func(), error) {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return Config{}, logr.Discard(), nil, err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return Config{}, logr.Discard(), nil, err
	}
	log, sync, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return Config{}, logr.Discard(), nil, err
	}

	return cfg, log, sync, nil
}
