package operations

import (
	"context"
	gomath "math"

	"github.com/GriffinCanCode/approx/internal/numerics/logexp"
	"github.com/GriffinCanCode/approx/internal/providers/approx/common"
	"github.com/GriffinCanCode/approx/internal/types"
)

// LogExpOps handles logarithms, exponentials and powers
type LogExpOps struct {
	*common.ApproxOps
}

// GetTools returns log/exp tool definitions
func (l *LogExpOps) GetTools() []types.Tool {
	method := types.Parameter{Name: "method", Type: "string", Description: "Natural log method: bithack (default) or series", Required: false}
	return []types.Tool{
		{
			ID:          "approx.ln",
			Name:        "Natural Logarithm",
			Description: "Approximate ln(x) from the IEEE-754 bit pattern of x, or with a series",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Positive finite argument", Required: true},
				method,
			},
			Returns: "approximation",
		},
		{
			ID:          "approx.exp",
			Name:        "Exponential",
			Description: "Approximate e^x with its Taylor series, summed until it stops changing",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "approximation",
		},
		{
			ID:          "approx.power",
			Name:        "Power",
			Description: "Approximate base^exponent; whole exponents multiply exactly",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "approximation",
		},
		{
			ID:          "approx.log",
			Name:        "Logarithm",
			Description: "Approximate log_base(x) as ln(x) / ln(base)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Positive finite argument", Required: true},
				{Name: "base", Type: "number", Description: "Positive finite base other than 1", Required: true},
				method,
			},
			Returns: "approximation",
		},
	}
}

// Ln approximates the natural logarithm
func (l *LogExpOps) Ln(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	m, err := l.method(params)
	if err != nil {
		return common.FromError(err)
	}
	v, err := m.NaturalLog(x)
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(v, gomath.Log(x), map[string]interface{}{"method": string(m)})
}

// Exp approximates e^x
func (l *LogExpOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Approximation(logexp.NaturalExp(x), gomath.Exp(x), nil)
}

// Power approximates base^exponent
func (l *LogExpOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetNumber(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	exponent, ok := common.GetNumber(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}
	v, err := logexp.Power(base, exponent)
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(v, gomath.Pow(base, exponent), nil)
}

// Log approximates log_base(x)
func (l *LogExpOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	base, ok := common.GetNumber(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	m, err := l.method(params)
	if err != nil {
		return common.FromError(err)
	}
	v, err := logexp.LogarithmWith(m, x, base)
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(v, gomath.Log(x)/gomath.Log(base), map[string]interface{}{"method": string(m)})
}

func (l *LogExpOps) method(params map[string]interface{}) (logexp.Method, error) {
	name, ok := common.GetString(params, "method")
	if !ok || name == "" {
		return l.Settings.LogMethod, nil
	}
	return logexp.ParseMethod(name)
}
