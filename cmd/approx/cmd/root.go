package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/approx/internal/config"
	"github.com/GriffinCanCode/approx/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/approx/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

type options struct {
	cfgFile     string
	verbose     bool
	transcript  string
	precision   int
	compare     bool
	metricsFile string
	noColor     bool
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	opts    options
	cfg     *config.Config
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// NewRootCommand builds the approx command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "approx",
		Short: "Series approximations of elementary functions and calculus",
		Long: `approx evaluates elementary functions from first principles: truncated
Taylor series for the trigonometric functions, the Leibniz series for pi,
an IEEE-754 bit trick for the natural logarithm, and finite differences and
Riemann sums for calculus.

Programs:
  trig       - six trigonometric ratios and three inverse functions
  logarithm  - logarithm to an arbitrary base
  power      - real powers
  pi         - Leibniz series for pi
  ftc        - Fundamental Theorem of Calculus demonstration

Inputs not given as flags are prompted for. Each program run is mirrored
into <program>_output.txt.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.StringVar(&a.opts.transcript, "transcript", "", `transcript file (default "<program>_output.txt", "-" disables)`)
	pf.IntVar(&a.opts.precision, "precision", 0, "significant digits in printed numbers (default from config)")
	pf.BoolVar(&a.opts.compare, "compare", false, "print a reference value and the absolute error next to each result")
	pf.StringVar(&a.opts.metricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")
	pf.BoolVar(&a.opts.noColor, "no-color", false, "disable console styling")

	root.AddCommand(
		a.trigCmd(),
		a.logarithmCmd(),
		a.powerCmd(),
		a.piCmd(),
		a.ftcCmd(),
		a.evalCmd(),
		a.toolsCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the CLI until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.opts.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("precision") {
		cfg.Output.Precision = a.opts.precision
	}
	if a.opts.noColor {
		cfg.Output.Color = false
	}
	a.cfg = cfg

	if a.log == nil {
		logCfg := logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			OutputPaths: []string{"stderr"},
		}
		if a.opts.verbose {
			logCfg = logging.DevelopmentConfig()
		}
		if a.log, err = logging.New(logCfg); err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	if a.metrics == nil {
		a.metrics = monitoring.NewMetrics()
	}

	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", a.opts.cfgFile),
		zap.Int("precision", cfg.Output.Precision))
	return nil
}

// finish writes the metrics textfile if one was requested. The command's
// own error wins over a metrics error.
func (a *app) finish(err error) error {
	if a.opts.metricsFile == "" {
		return err
	}
	if werr := a.metrics.WriteTextfile(a.opts.metricsFile); werr != nil {
		a.log.Warn("failed to write metrics", zap.String("path", a.opts.metricsFile), zap.Error(werr))
		if err == nil {
			err = fmt.Errorf("failed to write metrics: %w", werr)
		}
	}
	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
