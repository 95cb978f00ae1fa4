package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/approx/internal/client"
	"github.com/GriffinCanCode/approx/internal/providers/approx"
	"github.com/GriffinCanCode/approx/internal/service"
	"github.com/GriffinCanCode/approx/internal/shared/id"
	"github.com/GriffinCanCode/approx/internal/types"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// errToolFailed signals a tool that ran but reported failure. The result
// has already been printed.
var errToolFailed = errors.New("tool reported failure")

func (a *app) evalCmd() *cobra.Command {
	var remote string
	c := &cobra.Command{
		Use:   "eval <tool> [key=value...]",
		Short: "Execute one approximation tool and print the JSON result",
		Long: `Executes a tool such as approx.sin or approx.riemann with the given
parameters. Values that parse as numbers or booleans are sent as such;
anything else is sent as a string.

  approx eval approx.sin x=1
  approx eval approx.integral function=x^2 a=0 b=1
  approx eval approx.derivative expr="x^3 - 2*x" x=2 --remote http://localhost:8000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return a.finish(err)
			}

			var result *types.Result
			if remote != "" {
				cfg := a.cfg.Client
				cfg.BaseURL = remote
				result, err = client.New(cfg, a.log).Execute(cmd.Context(), args[0], params)
			} else {
				var reg *service.Registry
				if reg, err = a.localRegistry(); err == nil {
					appCtx := &types.Context{RequestID: id.NewRequestID().String()}
					result, err = reg.Execute(cmd.Context(), args[0], params, appCtx)
				}
			}
			if err != nil {
				return a.finish(err)
			}

			out, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
			if err != nil {
				return a.finish(fmt.Errorf("failed to encode result: %w", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if !result.Success {
				return a.finish(errToolFailed)
			}
			return a.finish(nil)
		},
	}
	c.Flags().StringVar(&remote, "remote", "", "base URL of an approx server (default: run locally)")
	return c
}

func (a *app) toolsCmd() *cobra.Command {
	var format, remote string
	c := &cobra.Command{
		Use:   "tools",
		Short: "List the approximation tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var services []types.Service
			var err error
			if remote != "" {
				cfg := a.cfg.Client
				cfg.BaseURL = remote
				services, err = client.New(cfg, a.log).ListServices(cmd.Context())
			} else {
				var reg *service.Registry
				if reg, err = a.localRegistry(); err == nil {
					services = reg.List(nil)
				}
			}
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "json":
				out, err = sonic.ConfigStd.MarshalIndent(services, "", "  ")
			case "yaml":
				out, err = yaml.Marshal(services)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode tools: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
			return nil
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	c.Flags().StringVar(&remote, "remote", "", "base URL of an approx server (default: list locally)")
	return c
}

// localRegistry builds the same registry the server uses, bound to this
// invocation's metrics.
func (a *app) localRegistry() (*service.Registry, error) {
	settings, err := approx.SettingsFromConfig(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric settings: %w", err)
	}
	provider, err := approx.NewProvider(settings)
	if err != nil {
		return nil, err
	}
	reg := service.NewRegistry(a.log, a.metrics)
	if err := reg.Register(provider); err != nil {
		return nil, err
	}
	return reg, nil
}

// parseParams turns key=value arguments into tool parameters.
func parseParams(args []string) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q is not key=value", arg)
		}
		params[key] = parseValue(value)
	}
	return params, nil
}

// parseValue keeps non-finite numbers as strings; JSON has no encoding for
// them and the tools accept numeric strings.
func parseValue(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
