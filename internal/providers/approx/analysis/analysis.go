package analysis

import (
	"context"
	"errors"
	"strconv"

	"github.com/GriffinCanCode/approx/internal/expr"
	"github.com/GriffinCanCode/approx/internal/numerics/calculus"
	"github.com/GriffinCanCode/approx/internal/numerics/reference"
	"github.com/GriffinCanCode/approx/internal/providers/approx/common"
	"github.com/GriffinCanCode/approx/internal/types"
)

// CalculusOps handles differentiation and integration of catalog functions
// and user expressions
type CalculusOps struct {
	*common.ApproxOps
}

var errFunctionRequired = errors.New("function or expr parameter required")

var (
	functionParam = types.Parameter{Name: "function", Type: "string", Description: "Catalog function by index, name or alias (see approx.functions)", Required: false}
	exprParam     = types.Parameter{Name: "expr", Type: "string", Description: "Expression in x, e.g. \"x^2 + sin(x)\"; used when function is absent", Required: false}
)

// GetTools returns calculus tool definitions
func (c *CalculusOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "approx.derivative",
			Name:        "Derivative",
			Description: "Central difference (f(x+h) - f(x-h)) / 2h",
			Parameters: []types.Parameter{
				functionParam, exprParam,
				{Name: "x", Type: "number", Description: "Point of evaluation", Required: true},
				{Name: "h", Type: "number", Description: "Step size", Required: false},
			},
			Returns: "approximation",
		},
		{
			ID:          "approx.riemann",
			Name:        "Riemann Sum",
			Description: "Riemann sum of f over [a, b] with n equal partitions",
			Parameters: []types.Parameter{
				functionParam, exprParam,
				{Name: "a", Type: "number", Description: "Left end of the interval", Required: true},
				{Name: "b", Type: "number", Description: "Right end of the interval", Required: true},
				{Name: "n", Type: "integer", Description: "Number of partitions", Required: true},
				{Name: "rule", Type: "string", Description: "left, right or midpoint (default)", Required: false},
			},
			Returns: "approximation",
		},
		{
			ID:          "approx.integral",
			Name:        "Accumulation Function",
			Description: "Midpoint approximation of the integral of f from a to x",
			Parameters: []types.Parameter{
				functionParam, exprParam,
				{Name: "a", Type: "number", Description: "Lower limit", Required: true},
				{Name: "x", Type: "number", Description: "Upper limit", Required: true},
				{Name: "n", Type: "integer", Description: "Number of partitions", Required: false},
			},
			Returns: "approximation",
		},
		{
			ID:          "approx.ftc",
			Name:        "Fundamental Theorem of Calculus",
			Description: "f(x), f'(x), the integrals of f on [a, b] and [a, x], and the derivative of the accumulation function at x",
			Parameters: []types.Parameter{
				functionParam, exprParam,
				{Name: "a", Type: "number", Description: "Left end of the interval", Required: true},
				{Name: "b", Type: "number", Description: "Right end of the interval", Required: true},
				{Name: "x", Type: "number", Description: "Point inside [a, b]", Required: true},
				{Name: "n", Type: "integer", Description: "Number of partitions", Required: false},
				{Name: "h", Type: "number", Description: "Difference step", Required: false},
			},
			Returns: "ftc",
		},
		{
			ID:          "approx.functions",
			Name:        "Function Catalog",
			Description: "List the built-in single-variable functions",
			Parameters:  []types.Parameter{},
			Returns:     "array",
		},
	}
}

// Derivative approximates f'(x)
func (c *CalculusOps) Derivative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	f, label, err := c.function(ctx, params)
	if err != nil {
		return common.Failure(err.Error())
	}
	x, err := common.RequireNumber(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	d, err := calculus.NewDerivative(f, c.step(params))
	if err != nil {
		return common.FromError(err)
	}
	v := d.Eval(x)
	return common.Approximation(v, reference.Derivative(f, x), extras(f, label, map[string]interface{}{"h": d.H}))
}

// Riemann approximates the integral of f on [a, b]
func (c *CalculusOps) Riemann(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	f, label, err := c.function(ctx, params)
	if err != nil {
		return common.Failure(err.Error())
	}
	a, err := common.RequireNumber(params, "a")
	if err != nil {
		return common.Failure(err.Error())
	}
	b, err := common.RequireNumber(params, "b")
	if err != nil {
		return common.Failure(err.Error())
	}
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required (whole number)")
	}
	rule := c.Settings.Rule
	if name, ok := common.GetString(params, "rule"); ok && name != "" {
		if rule, err = calculus.ParseRule(name); err != nil {
			return common.FromError(err)
		}
	}

	v, err := calculus.RiemannSum(f, calculus.Partition{A: a, B: b, N: n}, rule)
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(v, reference.Integral(f, a, b), extras(f, label, map[string]interface{}{"rule": string(rule), "n": n}))
}

// Integral approximates the accumulation function ∫_a^x f
func (c *CalculusOps) Integral(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	f, label, err := c.function(ctx, params)
	if err != nil {
		return common.Failure(err.Error())
	}
	a, err := common.RequireNumber(params, "a")
	if err != nil {
		return common.Failure(err.Error())
	}
	x, err := common.RequireNumber(params, "x")
	if err != nil {
		return common.Failure(err.Error())
	}
	in, err := calculus.NewIntegral(f, a, c.partitions(params))
	if err != nil {
		return common.FromError(err)
	}
	v, err := in.At(x)
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(v, reference.Integral(f, a, x), extras(f, label, map[string]interface{}{"n": in.N}))
}

// FTC evaluates every quantity of the Fundamental Theorem at x
func (c *CalculusOps) FTC(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	f, label, err := c.function(ctx, params)
	if err != nil {
		return common.Failure(err.Error())
	}
	var vals [3]float64
	for i, key := range []string{"a", "b", "x"} {
		if vals[i], err = common.RequireNumber(params, key); err != nil {
			return common.Failure(err.Error())
		}
	}
	a, b, x := vals[0], vals[1], vals[2]

	res, err := calculus.FundamentalTheorem(f, calculus.Partition{A: a, B: b, N: c.partitions(params)}, x, c.step(params))
	if err != nil {
		return common.FromError(err)
	}
	return common.Approximation(res.Recovered, res.F, extras(f, label, map[string]interface{}{
		"x":                     res.X,
		"f":                     common.Number(res.F),
		"f_prime":               common.Number(res.FPrime),
		"f_prime_reference":     common.Number(reference.Derivative(f, x)),
		"area":                  common.Number(res.Area),
		"area_reference":        common.Number(reference.Integral(f, a, b)),
		"accumulated":           common.Number(res.Accumulated),
		"accumulated_reference": common.Number(reference.Integral(f, a, x)),
		"recovered":             common.Number(res.Recovered),
	}))
}

// Functions lists the catalog
func (c *CalculusOps) Functions(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	catalog := calculus.Catalog()
	out := make([]map[string]interface{}, 0, len(catalog))
	for _, n := range catalog {
		out = append(out, map[string]interface{}{
			"index":   n.Index,
			"name":    n.Name,
			"aliases": n.Aliases,
		})
	}
	return common.Success(map[string]interface{}{"functions": out})
}

// function resolves the function or expr parameter. Each call compiles its
// own expression runtime, so concurrent requests share nothing. Expressions
// stop running when ctx is done.
func (c *CalculusOps) function(ctx context.Context, params map[string]interface{}) (calculus.Function, string, error) {
	if key, ok := functionKey(params); ok {
		n, err := calculus.Lookup(key)
		if err != nil {
			return nil, "", err
		}
		return n, n.Name, nil
	}
	if src, ok := common.GetString(params, "expr"); ok && src != "" {
		f, err := expr.Compile(src, expr.WithTimeout(c.Settings.ExprTimeout), expr.WithContext(ctx))
		if err != nil {
			return nil, "", err
		}
		return f, f.Source(), nil
	}
	return nil, "", errFunctionRequired
}

func functionKey(params map[string]interface{}) (string, bool) {
	switch v := params["function"].(type) {
	case string:
		return v, v != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		return "", false
	}
}

func (c *CalculusOps) step(params map[string]interface{}) float64 {
	if h, ok := common.GetNumber(params, "h"); ok {
		return h
	}
	return c.Settings.Step
}

func (c *CalculusOps) partitions(params map[string]interface{}) int {
	if n, ok := common.GetInt(params, "n"); ok {
		return n
	}
	return c.Settings.Partitions
}

func extras(f calculus.Function, label string, data map[string]interface{}) map[string]interface{} {
	data["function"] = label
	if ef, ok := f.(*expr.Function); ok && ef.Err() != nil {
		data["warning"] = ef.Err().Error()
	}
	return data
}
