package approx

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/approx/internal/config"
	"github.com/GriffinCanCode/approx/internal/numerics/calculus"
	"github.com/GriffinCanCode/approx/internal/numerics/logexp"
	"github.com/GriffinCanCode/approx/internal/providers/approx/analysis"
	"github.com/GriffinCanCode/approx/internal/providers/approx/common"
	"github.com/GriffinCanCode/approx/internal/providers/approx/operations"
	"github.com/GriffinCanCode/approx/internal/types"
)

// Provider exposes the numerical approximations as tools
type Provider struct {
	// Module instances
	trig     *operations.TrigOps
	logexp   *operations.LogExpOps
	calculus *analysis.CalculusOps
}

// NewProvider creates the approximation provider with the given settings
func NewProvider(settings common.Settings) (*Provider, error) {
	ops, err := common.NewApproxOps(settings)
	if err != nil {
		return nil, fmt.Errorf("invalid provider settings: %w", err)
	}

	return &Provider{
		trig:     &operations.TrigOps{ApproxOps: ops},
		logexp:   &operations.LogExpOps{ApproxOps: ops},
		calculus: &analysis.CalculusOps{ApproxOps: ops},
	}, nil
}

// NewDefaultProvider uses the core defaults
func NewDefaultProvider() *Provider {
	p, err := NewProvider(common.DefaultSettings())
	if err != nil {
		panic(err)
	}
	return p
}

// SettingsFromConfig maps application configuration onto tool settings
func SettingsFromConfig(cfg *config.Config) (common.Settings, error) {
	method, err := logexp.ParseMethod(cfg.Series.LogMethod)
	if err != nil {
		return common.Settings{}, err
	}
	rule, err := calculus.ParseRule(cfg.Calculus.Rule)
	if err != nil {
		return common.Settings{}, err
	}
	return common.Settings{
		Trig:        cfg.Trig(),
		LogMethod:   method,
		Step:        cfg.Calculus.Step,
		Partitions:  cfg.Calculus.Partitions,
		Rule:        rule,
		ExprTimeout: cfg.Server.ExprTimeout.Duration,
	}, nil
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.trig.GetTools()...)
	tools = append(tools, p.logexp.GetTools()...)
	tools = append(tools, p.calculus.GetTools()...)

	return types.Service{
		ID:          "approx",
		Name:        "Approximation Service",
		Description: "Series, bit-level and Riemann-sum approximations checked against library references",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"trigonometry",
			"logarithms",
			"exponentials",
			"differentiation",
			"integration",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{
				Name: "Approximation",
				Fields: map[string]string{
					"result":    "number|string",
					"reference": "number|string",
					"abs_error": "number|string",
				},
			},
			{
				Name: "FTC",
				Fields: map[string]string{
					"f":           "number|string",
					"f_prime":     "number|string",
					"area":        "number|string",
					"accumulated": "number|string",
					"recovered":   "number|string",
				},
			},
		},
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Trig operations
	case "approx.sin":
		return p.trig.Sin(ctx, params, appCtx)
	case "approx.cos":
		return p.trig.Cos(ctx, params, appCtx)
	case "approx.tan":
		return p.trig.Tan(ctx, params, appCtx)
	case "approx.cot":
		return p.trig.Cot(ctx, params, appCtx)
	case "approx.sec":
		return p.trig.Sec(ctx, params, appCtx)
	case "approx.csc":
		return p.trig.Csc(ctx, params, appCtx)
	case "approx.asin":
		return p.trig.Asin(ctx, params, appCtx)
	case "approx.acos":
		return p.trig.Acos(ctx, params, appCtx)
	case "approx.atan":
		return p.trig.Atan(ctx, params, appCtx)
	case "approx.pi":
		return p.trig.Pi(ctx, params, appCtx)

	// Log and exp operations
	case "approx.ln":
		return p.logexp.Ln(ctx, params, appCtx)
	case "approx.exp":
		return p.logexp.Exp(ctx, params, appCtx)
	case "approx.power":
		return p.logexp.Power(ctx, params, appCtx)
	case "approx.log":
		return p.logexp.Log(ctx, params, appCtx)

	// Calculus operations
	case "approx.derivative":
		return p.calculus.Derivative(ctx, params, appCtx)
	case "approx.riemann":
		return p.calculus.Riemann(ctx, params, appCtx)
	case "approx.integral":
		return p.calculus.Integral(ctx, params, appCtx)
	case "approx.ftc":
		return p.calculus.FTC(ctx, params, appCtx)
	case "approx.functions":
		return p.calculus.Functions(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
