package calculus

import (
	"fmt"
	"math"
	"testing"

	"github.com/GriffinCanCode/approx/internal/numerics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = Func(func(x float64) float64 { return x * x })

func TestDerivative(t *testing.T) {
	d, err := NewDerivative(square, DefaultStep)
	require.NoError(t, err)
	for _, x := range []float64{-3, -0.5, 0, 1, 2.5} {
		assert.InDelta(t, 2*x, d.Eval(x), 1e-6, "x=%v", x)
	}

	sin := Func(math.Sin)
	ds, err := NewDerivative(sin, 1e-4)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(1), ds.Eval(1), 1e-8)

	// Second derivative by composition.
	dd, err := NewDerivative(d, 1e-3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, dd.Eval(1), 1e-3)
}

func TestNewDerivativeRejectsStep(t *testing.T) {
	for _, h := range []float64{0, -1e-5, math.NaN(), math.Inf(1)} {
		_, err := NewDerivative(square, h)
		assert.ErrorIs(t, err, numerics.ErrInvalidArgument, "h=%v", h)
	}
}

func TestRiemannSumConvergesToOneThird(t *testing.T) {
	prev := math.Inf(1)
	for _, n := range []int{10, 100, 1000, 10000} {
		got, err := RiemannSum(square, Partition{A: 0, B: 1, N: n}, Midpoint)
		require.NoError(t, err)
		diff := math.Abs(got - 1.0/3)
		assert.Less(t, diff, prev, "n=%d", n)
		prev = diff
	}
	assert.Less(t, prev, 1e-8)
}

func TestRiemannSumRules(t *testing.T) {
	p := Partition{A: 0, B: 1, N: 4}
	tests := []struct {
		rule Rule
		want float64
	}{
		{Left, (0 + 1.0/16 + 4.0/16 + 9.0/16) / 4},
		{Right, (1.0/16 + 4.0/16 + 9.0/16 + 1) / 4},
		{Midpoint, (1.0/64 + 9.0/64 + 25.0/64 + 49.0/64) / 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.rule), func(t *testing.T) {
			got, err := RiemannSum(square, p, tt.rule)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}

	linear := Func(func(x float64) float64 { return 2*x + 3 })
	got, err := RiemannSum(linear, Partition{A: -1, B: 2, N: 7}, Midpoint)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, 1e-12)
}

func TestRiemannSumRejectsBadPartition(t *testing.T) {
	tests := []struct {
		name string
		p    Partition
		rule Rule
	}{
		{"zero partitions", Partition{A: 0, B: 1, N: 0}, Midpoint},
		{"negative partitions", Partition{A: 0, B: 1, N: -5}, Midpoint},
		{"too many partitions", Partition{A: 0, B: 1, N: MaxPartitions + 1}, Midpoint},
		{"empty interval", Partition{A: 1, B: 1, N: 10}, Midpoint},
		{"reversed interval", Partition{A: 2, B: 1, N: 10}, Midpoint},
		{"nan endpoint", Partition{A: math.NaN(), B: 1, N: 10}, Midpoint},
		{"infinite endpoint", Partition{A: 0, B: math.Inf(1), N: 10}, Midpoint},
		{"unknown rule", Partition{A: 0, B: 1, N: 10}, Rule("simpson")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RiemannSum(square, tt.p, tt.rule)
			assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
		})
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("")
	require.NoError(t, err)
	assert.Equal(t, Midpoint, r)

	r, err = ParseRule("LEFT")
	require.NoError(t, err)
	assert.Equal(t, Left, r)

	_, err = ParseRule("trapezoid")
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
}

func TestIntegral(t *testing.T) {
	in, err := NewIntegral(square, 1, DefaultPartitions)
	require.NoError(t, err)

	assert.Equal(t, 0.0, in.Eval(1))
	assert.InDelta(t, (8.0-1)/3, in.Eval(2), 1e-6)
	assert.InDelta(t, -(1.0-0)/3, in.Eval(0), 1e-6)
	assert.True(t, math.IsNaN(in.Eval(math.NaN())))
	assert.True(t, math.IsNaN(in.Eval(math.Inf(1))))

	_, err = NewIntegral(square, math.Inf(-1), 10)
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
	_, err = NewIntegral(square, 0, 0)
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
}

func TestFundamentalTheorem(t *testing.T) {
	p := Partition{A: 0, B: 2, N: DefaultPartitions}
	for _, named := range []string{"x^2", "sin", "cos", "2x+3", "x^3"} {
		f, err := Lookup(named)
		require.NoError(t, err)

		for _, x := range []float64{0, 0.3, 1, 1.7, 2} {
			t.Run(fmt.Sprintf("%s at %v", f.Name, x), func(t *testing.T) {
				res, err := FundamentalTheorem(f, p, x, DefaultStep)
				require.NoError(t, err)
				assert.Equal(t, f.Eval(x), res.F)
				assert.InDelta(t, res.F, res.Recovered, 1e-4)
			})
		}
	}

	f, err := Lookup("x^2")
	require.NoError(t, err)
	res, err := FundamentalTheorem(f, p, 1, DefaultStep)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3, res.Area, 1e-5)
	assert.InDelta(t, 1.0/3, res.Accumulated, 1e-5)
	assert.InDelta(t, 2.0, res.FPrime, 1e-6)
}

func TestFundamentalTheoremRejects(t *testing.T) {
	p := Partition{A: 0, B: 1, N: 100}

	_, err := FundamentalTheorem(square, p, 1.5, DefaultStep)
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)

	_, err = FundamentalTheorem(square, p, 0.5, 0)
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)

	_, err = FundamentalTheorem(square, Partition{A: 0, B: 0, N: 100}, 0, DefaultStep)
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
}

func TestCatalog(t *testing.T) {
	all := Catalog()
	require.Len(t, all, 6)
	for i, n := range all {
		assert.Equal(t, i, n.Index)
	}

	tests := []struct {
		key  string
		want int
	}{
		{"0", 0},
		{"x^2", 0},
		{"CUBE", 1},
		{"sin(x)", 2},
		{" cos ", 3},
		{"sqrt", 4},
		{"2x + 3", 5},
		{"2X+3", 5},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			n, err := Lookup(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Index)
		})
	}

	for _, key := range []string{"6", "-1", "tan", ""} {
		_, err := Lookup(key)
		assert.ErrorIs(t, err, numerics.ErrInvalidArgument, "key=%q", key)
	}

	n, ok := ByIndex(5)
	require.True(t, ok)
	assert.Equal(t, "f(x) = 2x + 3", n.Label())
	assert.Equal(t, 13.0, n.Eval(5))
}
