package approx

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/GriffinCanCode/approx/internal/config"
	"github.com/GriffinCanCode/approx/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, p *Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	res, err := p.Execute(context.Background(), toolID, params, &types.Context{})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func number(t *testing.T, res *types.Result, key string) float64 {
	t.Helper()
	require.True(t, res.Success, "unexpected failure: %v", res.Error)
	v, ok := res.Data[key].(float64)
	require.True(t, ok, "%s is %T (%v)", key, res.Data[key], res.Data[key])
	return v
}

func failure(t *testing.T, res *types.Result) string {
	t.Helper()
	require.False(t, res.Success)
	require.NotNil(t, res.Error)
	return *res.Error
}

func TestDefinition(t *testing.T) {
	def := NewDefaultProvider().Definition()

	assert.Equal(t, "approx", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)
	assert.Len(t, def.Tools, 19)

	seen := map[string]bool{}
	for _, tool := range def.Tools {
		assert.True(t, strings.HasPrefix(tool.ID, "approx."), tool.ID)
		assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
		seen[tool.ID] = true
	}
}

func TestTrigTools(t *testing.T) {
	p := NewDefaultProvider()

	tests := []struct {
		tool string
		x    float64
		want float64
	}{
		{"approx.sin", 1, math.Sin(1)},
		{"approx.cos", 1, math.Cos(1)},
		{"approx.tan", 0.5, math.Tan(0.5)},
		{"approx.sec", 0.5, 1 / math.Cos(0.5)},
		{"approx.csc", 0.5, 1 / math.Sin(0.5)},
		{"approx.atan", 0.5, math.Atan(0.5)},
		{"approx.asin", 0.5, math.Asin(0.5)},
		{"approx.acos", 0.5, math.Acos(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			res := execute(t, p, tt.tool, map[string]interface{}{"x": tt.x})
			assert.InDelta(t, tt.want, number(t, res, "result"), 1e-9)
			assert.InDelta(t, tt.want, number(t, res, "reference"), 1e-15)
			assert.Less(t, number(t, res, "abs_error"), 1e-9)
		})
	}
}

func TestInverseTrigOutsideDomain(t *testing.T) {
	res := execute(t, NewDefaultProvider(), "approx.asin", map[string]interface{}{"x": 2.0})
	assert.Contains(t, failure(t, res), "must be within [-1, 1]")
}

func TestMissingParameter(t *testing.T) {
	res := execute(t, NewDefaultProvider(), "approx.cos", map[string]interface{}{})
	assert.Equal(t, "x parameter required", failure(t, res))
}

func TestNonFiniteEncoding(t *testing.T) {
	res := execute(t, NewDefaultProvider(), "approx.cot", map[string]interface{}{"x": 0.0})
	require.True(t, res.Success)
	assert.Equal(t, "+Inf", res.Data["result"])
	assert.Equal(t, "NaN", res.Data["abs_error"])

	_, err := json.Marshal(res)
	assert.NoError(t, err)
}

func TestPi(t *testing.T) {
	p := NewDefaultProvider()

	res := execute(t, p, "approx.pi", map[string]interface{}{"iterations": 1000.0})
	assert.InDelta(t, 0.001, number(t, res, "abs_error"), 1e-6)
	assert.Equal(t, 1000, res.Data["iterations"])

	res = execute(t, p, "approx.pi", map[string]interface{}{"iterations": 2.5})
	failure(t, res)
}

func TestLogExpTools(t *testing.T) {
	p := NewDefaultProvider()

	res := execute(t, p, "approx.log", map[string]interface{}{"x": 8.0, "base": 2.0})
	assert.InDelta(t, 3, number(t, res, "result"), 2e-3)
	assert.Equal(t, "bithack", res.Data["method"])

	res = execute(t, p, "approx.log", map[string]interface{}{"x": 8.0, "base": 2.0, "method": "series"})
	assert.InDelta(t, 3, number(t, res, "result"), 1e-12)

	res = execute(t, p, "approx.log", map[string]interface{}{"x": 8.0, "base": 1.0})
	failure(t, res)

	res = execute(t, p, "approx.ln", map[string]interface{}{"x": 1.0})
	assert.Equal(t, 0.0, number(t, res, "result"))

	res = execute(t, p, "approx.ln", map[string]interface{}{"x": 0.0})
	failure(t, res)

	res = execute(t, p, "approx.ln", map[string]interface{}{"x": 2.0, "method": "abacus"})
	assert.Contains(t, failure(t, res), "unknown log method")

	res = execute(t, p, "approx.exp", map[string]interface{}{"x": 1.0})
	assert.InDelta(t, math.E, number(t, res, "result"), 1e-12)

	res = execute(t, p, "approx.power", map[string]interface{}{"base": 2.0, "exponent": -3.0})
	assert.Equal(t, 0.125, number(t, res, "result"))
	assert.Equal(t, 0.0, number(t, res, "abs_error"))
}

func TestCalculusTools(t *testing.T) {
	p := NewDefaultProvider()

	res := execute(t, p, "approx.derivative", map[string]interface{}{"function": "x^2", "x": 3.0})
	assert.InDelta(t, 6, number(t, res, "result"), 1e-6)
	assert.Equal(t, "x^2", res.Data["function"])

	res = execute(t, p, "approx.derivative", map[string]interface{}{"expr": "x*x*x", "x": 2.0})
	assert.InDelta(t, 12, number(t, res, "result"), 1e-6)
	assert.InDelta(t, 12, number(t, res, "reference"), 1e-6)

	res = execute(t, p, "approx.riemann", map[string]interface{}{"function": 0.0, "a": 0.0, "b": 1.0, "n": 1000.0})
	assert.InDelta(t, 1.0/3, number(t, res, "result"), 1e-6)
	assert.InDelta(t, 1.0/3, number(t, res, "reference"), 1e-12)
	assert.Equal(t, "midpoint", res.Data["rule"])

	res = execute(t, p, "approx.riemann", map[string]interface{}{"function": "sin", "a": 0.0, "b": math.Pi, "n": 100.0, "rule": "left"})
	assert.InDelta(t, 2, number(t, res, "result"), 1e-3)

	res = execute(t, p, "approx.integral", map[string]interface{}{"function": "cos", "a": 0.0, "x": math.Pi / 2})
	assert.InDelta(t, 1, number(t, res, "result"), 1e-6)
}

func TestCalculusFailures(t *testing.T) {
	p := NewDefaultProvider()

	tests := []struct {
		name   string
		tool   string
		params map[string]interface{}
		want   string
	}{
		{"no function", "approx.derivative", map[string]interface{}{"x": 1.0}, "function or expr parameter required"},
		{"unknown function", "approx.derivative", map[string]interface{}{"function": "tan", "x": 1.0}, "tan"},
		{"bad expression", "approx.derivative", map[string]interface{}{"expr": "x +", "x": 1.0}, "cannot parse"},
		{"zero partitions", "approx.riemann", map[string]interface{}{"function": "x^2", "a": 0.0, "b": 1.0, "n": 0.0}, "n"},
		{"empty interval", "approx.riemann", map[string]interface{}{"function": "x^2", "a": 1.0, "b": 1.0, "n": 10.0}, "b"},
		{"bad rule", "approx.riemann", map[string]interface{}{"function": "x^2", "a": 0.0, "b": 1.0, "n": 10.0, "rule": "trapezoid"}, "trapezoid"},
		{"x outside", "approx.ftc", map[string]interface{}{"function": "x^2", "a": 0.0, "b": 1.0, "x": 5.0}, "x"},
		{"bad step", "approx.derivative", map[string]interface{}{"function": "x^2", "x": 1.0, "h": -1.0}, "h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, failure(t, execute(t, p, tt.tool, tt.params)), tt.want)
		})
	}
}

func TestRunawayExpressionIsBounded(t *testing.T) {
	p := NewDefaultProvider()

	start := time.Now()
	res := execute(t, p, "approx.riemann", map[string]interface{}{
		"expr": "(function () { while (true) {} })()", "a": 0.0, "b": 1.0, "n": 1000000.0,
	})
	assert.Less(t, time.Since(start), 10*time.Second)
	require.True(t, res.Success)
	assert.Equal(t, "NaN", res.Data["result"])
	assert.Contains(t, res.Data["warning"], "timeout")

	res = execute(t, p, "approx.derivative", map[string]interface{}{
		"expr": "x); })((function(){while(true){}})(), function(x){ return (x", "x": 1.0,
	})
	assert.Contains(t, failure(t, res), "timeout")
	assert.Less(t, time.Since(start), 20*time.Second)
}

func TestFTC(t *testing.T) {
	res := execute(t, NewDefaultProvider(), "approx.ftc", map[string]interface{}{
		"function": "linear", "a": 0.0, "b": 1.0, "x": 0.5,
	})
	require.True(t, res.Success)

	assert.InDelta(t, 4, number(t, res, "f"), 1e-12)
	assert.InDelta(t, 2, number(t, res, "f_prime"), 1e-6)
	assert.InDelta(t, 4, number(t, res, "area"), 1e-9)
	assert.InDelta(t, 1.75, number(t, res, "accumulated"), 1e-9)
	assert.InDelta(t, 4, number(t, res, "recovered"), 1e-4)
	assert.InDelta(t, 4, number(t, res, "result"), 1e-4)
	assert.InDelta(t, 4, number(t, res, "reference"), 1e-12)
}

func TestFunctions(t *testing.T) {
	res := execute(t, NewDefaultProvider(), "approx.functions", nil)
	require.True(t, res.Success)
	fns, ok := res.Data["functions"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, fns, 6)
	assert.Equal(t, "x^2", fns[0]["name"])
}

func TestUnknownTool(t *testing.T) {
	res := execute(t, NewDefaultProvider(), "approx.gamma", nil)
	assert.Equal(t, "unknown tool: approx.gamma", failure(t, res))
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Series.LogMethod = "series"
	cfg.Calculus.Rule = "left"

	s, err := SettingsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "series", string(s.LogMethod))
	assert.Equal(t, "left", string(s.Rule))

	p, err := NewProvider(s)
	require.NoError(t, err)
	res := execute(t, p, "approx.ln", map[string]interface{}{"x": 2.0})
	assert.Equal(t, "series", res.Data["method"])

	cfg.Calculus.Rule = "simpson"
	_, err = SettingsFromConfig(cfg)
	assert.Error(t, err)
}
