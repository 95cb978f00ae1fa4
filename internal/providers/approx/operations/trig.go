package operations

import (
	"context"
	gomath "math"

	"github.com/GriffinCanCode/approx/internal/numerics/trig"
	"github.com/GriffinCanCode/approx/internal/providers/approx/common"
	"github.com/GriffinCanCode/approx/internal/types"
)

// TrigOps handles the series trigonometric functions
type TrigOps struct {
	*common.ApproxOps
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	angle := []types.Parameter{
		{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
	}
	unit := []types.Parameter{
		{Name: "x", Type: "number", Description: "Value between -1 and 1", Required: true},
	}
	return []types.Tool{
		{ID: "approx.sin", Name: "Sine", Description: "Approximate sine with a truncated Taylor series", Parameters: angle, Returns: "approximation"},
		{ID: "approx.cos", Name: "Cosine", Description: "Approximate cosine with a truncated Taylor series", Parameters: angle, Returns: "approximation"},
		{ID: "approx.tan", Name: "Tangent", Description: "Approximate tangent as sine / cosine", Parameters: angle, Returns: "approximation"},
		{ID: "approx.cot", Name: "Cotangent", Description: "Approximate cotangent as 1 / tangent", Parameters: angle, Returns: "approximation"},
		{ID: "approx.sec", Name: "Secant", Description: "Approximate secant as 1 / cosine", Parameters: angle, Returns: "approximation"},
		{ID: "approx.csc", Name: "Cosecant", Description: "Approximate cosecant as 1 / sine", Parameters: angle, Returns: "approximation"},
		{ID: "approx.asin", Name: "Arcsine", Description: "Approximate inverse sine with its power series", Parameters: unit, Returns: "approximation"},
		{ID: "approx.acos", Name: "Arccosine", Description: "Approximate inverse cosine as pi/2 - arcsine", Parameters: unit, Returns: "approximation"},
		{ID: "approx.atan", Name: "Arctangent", Description: "Approximate inverse tangent with the Gregory series", Parameters: unit, Returns: "approximation"},
		{
			ID:          "approx.pi",
			Name:        "Pi (Leibniz)",
			Description: "Approximate pi with the first n terms of the Leibniz series",
			Parameters: []types.Parameter{
				{Name: "iterations", Type: "integer", Description: "Number of series terms", Required: true},
			},
			Returns: "approximation",
		},
	}
}

// Sin approximates sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return ratio(params, t.Trig.Sine, gomath.Sin)
}

// Cos approximates cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return ratio(params, t.Trig.Cosine, gomath.Cos)
}

// Tan approximates tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return ratio(params, t.Trig.Tangent, gomath.Tan)
}

// Cot approximates cotangent
func (t *TrigOps) Cot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return ratio(params, t.Trig.Cotangent, func(x float64) float64 { return 1 / gomath.Tan(x) })
}

// Sec approximates secant
func (t *TrigOps) Sec(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return ratio(params, t.Trig.Secant, func(x float64) float64 { return 1 / gomath.Cos(x) })
}

// Csc approximates cosecant
func (t *TrigOps) Csc(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return ratio(params, t.Trig.Cosecant, func(x float64) float64 { return 1 / gomath.Sin(x) })
}

// Asin approximates arcsine
func (t *TrigOps) Asin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return inverse(params, t.Trig.Arcsine, gomath.Asin)
}

// Acos approximates arccosine
func (t *TrigOps) Acos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return inverse(params, t.Trig.Arccosine, gomath.Acos)
}

// Atan approximates arctangent
func (t *TrigOps) Atan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return inverse(params, t.Trig.Arctangent, gomath.Atan)
}

// Pi approximates π with the Leibniz series
func (t *TrigOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "iterations")
	if !ok {
		return common.Failure("iterations parameter required (whole number)")
	}
	v, err := trig.ComputePi(n)
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(v, gomath.Pi, map[string]interface{}{"iterations": n})
}

func ratio(params map[string]interface{}, f, ref func(float64) float64) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Approximation(f(x), ref(x), nil)
}

func inverse(params map[string]interface{}, f func(float64) (float64, error), ref func(float64) float64) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	v, err := f(x)
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(v, ref(x), nil)
}
