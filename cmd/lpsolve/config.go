package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lexsimplex/lpio"
	"github.com/katalvlaran/lexsimplex/simplex"
)

const envPrefix = "LPSOLVE"

// Flag and config keys.
const (
	keyConfig        = "config"
	keyLogLevel      = "log-level"
	keyLogFormat     = "log-format"
	keyTolerance     = "tolerance"
	keyMaxIterations = "max-iterations"
	keyOutput        = "output"
	keyInputFormat   = "input-format"
	keyAddr          = "addr"
	keySolveTimeout  = "solve-timeout"
	keyMaxBodyBytes  = "max-body-bytes"
	keyShutdown      = "shutdown-timeout"
)

var errInvalidConfig = errors.New("lpsolve: invalid configuration")

// Config is the resolved configuration of one invocation.
type Config struct {
	LogLevel      string
	LogFormat     string
	Tolerance     float64
	MaxIterations int
	Output        lpio.Format
	InputFormat   lpio.Format
	Addr          string
	SolveTimeout  time.Duration
	MaxBodyBytes  int64
	Shutdown      time.Duration
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "config file (json, yaml or toml)")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(keyLogFormat, "console", "log encoding: console or json")
	fs.Float64(keyTolerance, simplex.DefaultTolerance, "sign tolerance of the pivot rule")
	fs.Int(keyMaxIterations, simplex.DefaultMaxIterations, "pivot budget, 0 means C(N, M)")
}

// newViper binds fs to a fresh viper instance with LPSOLVE_* env lookup and
// reads the config file named by --config, if any.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	return v, nil
}

// loadConfig resolves and validates every key.
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:      v.GetString(keyLogLevel),
		LogFormat:     v.GetString(keyLogFormat),
		Tolerance:     v.GetFloat64(keyTolerance),
		MaxIterations: v.GetInt(keyMaxIterations),
		Addr:          v.GetString(keyAddr),
		SolveTimeout:  v.GetDuration(keySolveTimeout),
		MaxBodyBytes:  v.GetInt64(keyMaxBodyBytes),
		Shutdown:      v.GetDuration(keyShutdown),
	}
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance < 0 {
		return Config{}, fmt.Errorf("%w: %s must be finite and non-negative", errInvalidConfig, keyTolerance)
	}
	if cfg.MaxIterations < 0 {
		return Config{}, fmt.Errorf("%w: %s must be non-negative", errInvalidConfig, keyMaxIterations)
	}
	if cfg.SolveTimeout < 0 {
		return Config{}, fmt.Errorf("%w: %s must be non-negative", errInvalidConfig, keySolveTimeout)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("%w: %s %q", errInvalidConfig, keyLogFormat, cfg.LogFormat)
	}

	var err error
	if out := v.GetString(keyOutput); out != "" {
		if cfg.Output, err = lpio.ParseFormat(out); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", errInvalidConfig, keyOutput, err)
		}
	}
	if in := v.GetString(keyInputFormat); in != "" {
		if cfg.InputFormat, err = lpio.ParseFormat(in); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", errInvalidConfig, keyInputFormat, err)
		}
	}

	return cfg, nil
}

// solverOptions maps the config onto simplex options.
func (c Config) solverOptions() []simplex.Option {
	return []simplex.Option{
		simplex.WithTolerance(c.Tolerance),
		simplex.WithMaxIterations(c.MaxIterations),
	}
}
