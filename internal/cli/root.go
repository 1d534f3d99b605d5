// Package cli implements the lineshape command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-qens/internal/config"
	"github.com/cwbudde/algo-qens/internal/logger"
)

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// globals holds flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	start      float64
	stop       float64
	step       float64
	method     string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "lineshape",
		Short: "Evaluate quasi-elastic line-shape models",
		Long: "lineshape evaluates delta, Lorentzian and resolution-convolved models over an\n" +
			"energy domain and prints, plots or guesses their parameters.",
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file (default $LINESHAPE_CONFIG)")
	pf.StringVar(&g.logLevel, "log-level", "", "override log level: debug|info|warn|error")
	pf.Float64Var(&g.start, "start", 0, "override domain start (meV)")
	pf.Float64Var(&g.stop, "stop", 0, "override domain stop, exclusive (meV)")
	pf.Float64Var(&g.step, "step", 0, "override domain step (meV)")
	pf.StringVar(&g.method, "method", "", "override convolution engine: auto|direct|fft")

	cmd.AddCommand(modelsCmd(), evalCmd(g), guessCmd(g))
	return cmd
}

// setup loads the configuration, applies flag overrides and installs the
// logger on the command's error stream.
func (g *globals) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cmd.Context(), g.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("start") {
		cfg.DomainStart = g.start
	}
	if flags.Changed("stop") {
		cfg.DomainStop = g.stop
	}
	if flags.Changed("step") {
		cfg.DomainStep = g.step
	}
	if flags.Changed("method") {
		cfg.Method = g.method
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.Setup(cmd.ErrOrStderr(), logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	log.Debug("config.loaded",
		"domain_start", cfg.DomainStart,
		"domain_stop", cfg.DomainStop,
		"domain_step", cfg.DomainStep,
		"method", cfg.Method,
	)
	return cfg, log, nil
}
