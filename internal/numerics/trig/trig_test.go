package trig

import (
	"fmt"
	"math"
	"testing"

	"github.com/GriffinCanCode/approx/internal/numerics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSineCosineAgainstStdlib(t *testing.T) {
	for x := -10.0; x <= 10.0; x += 0.5 {
		assert.InDelta(t, math.Sin(x), Sine(x), 1e-9, "sine(%v)", x)
		assert.InDelta(t, math.Cos(x), Cosine(x), 1e-9, "cosine(%v)", x)
	}
}

func TestPythagoreanIdentity(t *testing.T) {
	for x := -6.0; x <= 6.0; x += 0.25 {
		s, c := Sine(x), Cosine(x)
		assert.InDelta(t, 1.0, s*s+c*c, 1e-9, "x=%v", x)
	}
}

func TestSineCosineAtZero(t *testing.T) {
	assert.Equal(t, 0.0, Sine(0))
	assert.Equal(t, 1.0, Cosine(0))
}

func TestRatiosAtPoles(t *testing.T) {
	assert.True(t, math.IsInf(Cosecant(0), 1))
	assert.True(t, math.IsInf(Cotangent(0), 1))
	assert.Equal(t, 0.0, Tangent(0))
	assert.Equal(t, 1.0, Secant(0))

	// Huge angles overflow the series but are still values, not errors.
	assert.True(t, numerics.IsDegenerate(Sine(1e6)))
}

func TestRatios(t *testing.T) {
	x := 0.7
	assert.InDelta(t, math.Tan(x), Tangent(x), 1e-12)
	assert.InDelta(t, 1/math.Tan(x), Cotangent(x), 1e-12)
	assert.InDelta(t, 1/math.Cos(x), Secant(x), 1e-12)
	assert.InDelta(t, 1/math.Sin(x), Cosecant(x), 1e-12)
}

func TestInverseFunctions(t *testing.T) {
	t.Run("arcsine interior", func(t *testing.T) {
		got, err := Arcsine(0.5)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/6, got, 1e-12)
	})

	t.Run("arcsine endpoint converges slowly", func(t *testing.T) {
		got, err := Arcsine(1)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, got, 1e-2)
	})

	t.Run("arctangent interior", func(t *testing.T) {
		got, err := Arctangent(0.5)
		require.NoError(t, err)
		assert.InDelta(t, math.Atan(0.5), got, 1e-12)
	})

	t.Run("arctangent endpoint", func(t *testing.T) {
		got, err := Arctangent(1)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/4, got, 1e-4)
	})

	t.Run("arccosine", func(t *testing.T) {
		got, err := Arccosine(0.5)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/3, got, 1e-12)
	})
}

func TestArcsinePlusArccosine(t *testing.T) {
	for x := -1.0; x <= 1.0; x += 0.125 {
		asin, err := Arcsine(x)
		require.NoError(t, err)
		acos, err := Arccosine(x)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/2, asin+acos, 1e-12, "x=%v", x)
	}
}

func TestInverseDomain(t *testing.T) {
	inputs := []float64{1.5, -1.0001, math.NaN(), math.Inf(1)}
	funcs := map[string]func(float64) (float64, error){
		"arcsine":    Arcsine,
		"arctangent": Arctangent,
		"arccosine":  Arccosine,
	}
	for name, fn := range funcs {
		for _, x := range inputs {
			t.Run(fmt.Sprintf("%s(%v)", name, x), func(t *testing.T) {
				_, err := fn(x)
				assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
			})
		}
	}
}

func TestComputePi(t *testing.T) {
	tests := []struct {
		iterations int
		want       float64
	}{
		{0, 0},
		{1, 4},
		{2, 4 * (1 - 1.0/3)},
		{3, 4 * (1 - 1.0/3 + 1.0/5)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.iterations), func(t *testing.T) {
			got, err := ComputePi(tt.iterations)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}

	got, err := ComputePi(1000)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, got, 1e-2)
}

func TestComputePiErrorDecreases(t *testing.T) {
	prev := math.Inf(1)
	for n := 1; n <= 500; n++ {
		got, err := ComputePi(n)
		require.NoError(t, err)
		diff := math.Abs(got - math.Pi)
		require.Less(t, diff, prev, "n=%d", n)
		prev = diff
	}
}

func TestComputePiRejectsOutOfRange(t *testing.T) {
	_, err := ComputePi(-1)
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)

	_, err = ComputePi(MaxPiIterations + 1)
	assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), Default().Config())
	})

	t.Run("approximate pi in arccosine", func(t *testing.T) {
		e, err := New(Config{Terms: 10, InverseTerms: 100, PiIterations: 1000})
		require.NoError(t, err)

		pi, err := ComputePi(1000)
		require.NoError(t, err)

		got, err := e.Arccosine(0)
		require.NoError(t, err)
		assert.Equal(t, pi/2, got)
	})

	t.Run("few terms are less accurate", func(t *testing.T) {
		e, err := New(Config{Terms: 3, InverseTerms: 1})
		require.NoError(t, err)
		assert.Greater(t, math.Abs(e.Sine(3)-math.Sin(3)), 1e-3)
	})

	invalid := []Config{
		{Terms: 0, InverseTerms: 1},
		{Terms: 1, InverseTerms: 0},
		{Terms: MaxTerms + 1, InverseTerms: 1},
		{Terms: 1, InverseTerms: 1, PiIterations: -1},
	}
	for i, cfg := range invalid {
		t.Run(fmt.Sprintf("invalid %d", i), func(t *testing.T) {
			_, err := New(cfg)
			assert.ErrorIs(t, err, numerics.ErrInvalidArgument)
		})
	}
}
