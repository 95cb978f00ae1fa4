package logexp

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

const (
	maxExpTerms = 10000

	// MaxIntegerExponent bounds the repeated multiplication in Power.
	MaxIntegerExponent = 1_000_000
)

// NaturalExp sums the Maclaurin series of e^x until adding a term no longer
// changes the partial sum. Negative arguments return the reciprocal of the
// series at |x|, which avoids cancellation between alternating terms.
func NaturalExp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 1):
		return math.Inf(1)
	case math.IsInf(x, -1):
		return 0
	case x < 0:
		return 1 / NaturalExp(-x)
	}

	sum, term := 1.0, 1.0
	for n := 1; n <= maxExpTerms; n++ {
		term *= x / float64(n)
		next := sum + term
		if next == sum {
			break
		}
		sum = next
	}
	return sum
}

// Power raises base to exponent.
//
// Whole exponents use repeated multiplication (the reciprocal for negative
// ones) and accept any base. Fractional exponents go through
// NaturalExp(NaturalLog(base)·exponent) and need a positive base.
func Power(base, exponent float64) (float64, error) {
	if math.IsNaN(base) {
		return 0, numerics.InvalidArgument("power", "base", base, "must be a number")
	}
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) {
		return 0, numerics.InvalidArgument("power", "exponent", exponent, "must be finite")
	}

	switch {
	case exponent == 0:
		return 1, nil
	case exponent == 1:
		return base, nil
	case exponent == math.Trunc(exponent):
		return integerPower(base, exponent)
	}

	if !(base > 0) || math.IsInf(base, 1) {
		return 0, numerics.InvalidArgument("power", "base", base,
			"must be positive and finite for a fractional exponent")
	}
	ln, err := NaturalLog(base)
	if err != nil {
		return 0, err
	}
	if exponent < 0 {
		return 1 / NaturalExp(ln*-exponent), nil
	}
	return NaturalExp(ln * exponent), nil
}

func integerPower(base, exponent float64) (float64, error) {
	n := math.Abs(exponent)
	if n > MaxIntegerExponent {
		return 0, numerics.InvalidArgument("power", "exponent", exponent,
			fmt.Sprintf("whole exponents must be within [-%d, %d]", MaxIntegerExponent, MaxIntegerExponent))
	}

	out := 1.0
	for i := 0; i < int(n); i++ {
		out *= base
	}
	if exponent < 0 {
		return 1 / out, nil
	}
	return out, nil
}
