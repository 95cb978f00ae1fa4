package common

import (
	"errors"
	"math"
	"testing"

	"github.com/GriffinCanCode/approx/internal/numerics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, 1.5, Number(1.5))
	assert.Equal(t, "NaN", Number(math.NaN()))
	assert.Equal(t, "+Inf", Number(math.Inf(1)))
	assert.Equal(t, "-Inf", Number(math.Inf(-1)))
}

func TestGetNumber(t *testing.T) {
	params := map[string]interface{}{
		"f": 2.5, "i": 3, "s": "4.5", "inf": "+Inf", "bad": "four", "b": true,
		"u": uint8(7), "blank": " ",
	}

	v, ok := GetNumber(params, "f")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	v, ok = GetNumber(params, "i")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = GetNumber(params, "s")
	assert.True(t, ok)
	assert.Equal(t, 4.5, v)

	v, ok = GetNumber(params, "u")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	v, ok = GetNumber(params, "inf")
	assert.True(t, ok)
	assert.True(t, math.IsInf(v, 1))

	for _, key := range []string{"bad", "b", "blank", "missing"} {
		_, ok = GetNumber(params, key)
		assert.False(t, ok, key)
	}
}

func TestGetInt(t *testing.T) {
	params := map[string]interface{}{"n": 10.0, "frac": 2.5}

	n, ok := GetInt(params, "n")
	assert.True(t, ok)
	assert.Equal(t, 10, n)

	_, ok = GetInt(params, "frac")
	assert.False(t, ok)
}

func TestFromError(t *testing.T) {
	res, err := FromError(numerics.InvalidArgument("op", "x", -1, "must be positive"))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, *res.Error, "must be positive")

	boom := errors.New("boom")
	res, err = FromError(boom)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestApproximation(t *testing.T) {
	res, err := Approximation(3.1, 3, map[string]interface{}{"n": 7})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.InDelta(t, 0.1, res.Data["abs_error"].(float64), 1e-12)
	assert.Equal(t, 7, res.Data["n"])
}

func TestNewApproxOpsValidates(t *testing.T) {
	s := DefaultSettings()
	s.Trig.Terms = -1
	_, err := NewApproxOps(s)
	assert.Error(t, err)
}
