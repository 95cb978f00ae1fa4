package numerics

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("arcsine", "x", 2, "must be within [-1, 1]")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "arcsine: x=2: must be within [-1, 1]", err.Error())

	wrapped := fmt.Errorf("trig program: %w", err)
	assert.True(t, IsInvalidArgument(wrapped))

	var argErr *ArgumentError
	require.True(t, errors.As(wrapped, &argErr))
	assert.Equal(t, "x", argErr.Param)
	assert.Equal(t, 2.0, argErr.Value)
}

func TestIsInvalidArgumentUnrelated(t *testing.T) {
	assert.False(t, IsInvalidArgument(errors.New("boom")))
	assert.False(t, IsInvalidArgument(nil))
}

func TestIsDegenerate(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, false},
		{-1.5, false},
		{math.MaxFloat64, false},
		{math.Inf(1), true},
		{math.Inf(-1), true},
		{math.NaN(), true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.v), func(t *testing.T) {
			assert.Equal(t, tt.want, IsDegenerate(tt.v))
			assert.Equal(t, !tt.want, IsFinite(tt.v))
		})
	}
}
