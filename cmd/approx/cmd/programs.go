package cmd

import (
	"io"
	"path/filepath"

	"github.com/GriffinCanCode/approx/internal/programs"
	"github.com/GriffinCanCode/approx/internal/transcript"
	"github.com/spf13/cobra"
)

func (a *app) trigCmd() *cobra.Command {
	var x float64
	c := &cobra.Command{
		Use:   "trig",
		Short: "Approximate the trigonometric ratios of an angle",
		Long: `Approximates sine, cosine, tangent, cotangent, secant and cosecant of x
with truncated Taylor series, and arctangent, arcsine and arccosine with
power series that converge only for |x| <= 1.

Without --x the program keeps asking for new angles until told to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, programs.Trig{}, presets(cmd, map[string]any{"x": &x}))
		},
	}
	c.Flags().Float64Var(&x, "x", 0, "angle in radians")
	return c
}

func (a *app) logarithmCmd() *cobra.Command {
	var x, base float64
	var method string
	c := &cobra.Command{
		Use:   "logarithm",
		Short: "Approximate the logarithm of x to a base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := programs.Logarithm{Method: method}
			return a.run(cmd, p, presets(cmd, map[string]any{"x": &x, "base": &base}))
		},
	}
	c.Flags().Float64Var(&x, "x", 0, "logarithm argument")
	c.Flags().Float64Var(&base, "base", 0, "logarithmic base")
	c.Flags().StringVar(&method, "method", "", "natural logarithm method: bithack or series (default from config)")
	return c
}

func (a *app) powerCmd() *cobra.Command {
	var base, exponent float64
	c := &cobra.Command{
		Use:   "power",
		Short: "Approximate base raised to exponent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, programs.Power{}, presets(cmd, map[string]any{"base": &base, "exponent": &exponent}))
		},
	}
	c.Flags().Float64Var(&base, "base", 0, "base")
	c.Flags().Float64Var(&exponent, "exponent", 0, "exponent")
	return c
}

func (a *app) piCmd() *cobra.Command {
	var iterations int
	c := &cobra.Command{
		Use:   "pi",
		Short: "Approximate pi with the Leibniz series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, programs.Pi{}, presets(cmd, map[string]any{"iterations": &iterations}))
		},
	}
	c.Flags().IntVar(&iterations, "iterations", 0, "number of series terms")
	return c
}

func (a *app) ftcCmd() *cobra.Command {
	var option int
	var lo, hi, x float64
	var expression string
	c := &cobra.Command{
		Use:   "ftc",
		Short: "Demonstrate the Fundamental Theorem of Calculus",
		Long: `Approximates f(x), f'(x), the integral of f on [a, b], the integral of f
on [a, x] and the derivative of that integral at x.

f is picked from a menu of six functions, or given with --expr as an
expression in x such as "x^2 + sin(x)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := programs.FTC{Expr: expression}
			return a.run(cmd, p, presets(cmd, map[string]any{"option": &option, "a": &lo, "b": &hi, "x": &x}))
		},
	}
	c.Flags().IntVar(&option, "option", 0, "menu number of the function")
	c.Flags().Float64Var(&lo, "a", 0, "left end of the interval")
	c.Flags().Float64Var(&hi, "b", 0, "right end of the interval")
	c.Flags().Float64Var(&x, "x", 0, "point inside the interval")
	c.Flags().StringVar(&expression, "expr", "", "function of x instead of the menu")
	return c
}

// presets turns the flags that were set on the command line into program
// inputs. Flags left unset are prompted for.
func presets(cmd *cobra.Command, values map[string]any) []programs.Option {
	var opts []programs.Option
	for name, ptr := range values {
		if !cmd.Flags().Changed(name) {
			continue
		}
		switch v := ptr.(type) {
		case *float64:
			opts = append(opts, programs.WithPreset(name, *v))
		case *int:
			opts = append(opts, programs.WithPreset(name, float64(*v)))
		}
	}
	return opts
}

func (a *app) run(cmd *cobra.Command, p programs.Program, inputs []programs.Option) error {
	tr, err := a.openTranscript(cmd.OutOrStdout(), p.Name())
	if err != nil {
		return a.finish(err)
	}

	opts := append([]programs.Option{
		programs.WithLogger(a.log),
		programs.WithMetrics(a.metrics),
		programs.WithCompare(a.opts.compare),
	}, inputs...)
	s := programs.NewSession(a.cfg, tr, cmd.InOrStdin(), opts...)

	err = programs.Execute(cmd.Context(), p, s)
	if cerr := tr.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return a.finish(err)
}

func (a *app) openTranscript(console io.Writer, program string) (*transcript.Transcript, error) {
	color := transcript.WithColor(a.cfg.Output.Color)
	path := a.opts.transcript
	switch path {
	case "-":
		return transcript.New(console, io.Discard, color), nil
	case "":
		path = filepath.Join(a.cfg.Output.TranscriptDir, program+"_output.txt")
	}
	return transcript.Open(path, console, color)
}
