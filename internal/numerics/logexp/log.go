package logexp

import (
	"fmt"
	"math"
	"strings"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

const (
	// Ln2 is the constant folded into the exponent term of NaturalLog.
	Ln2 = 0.6931471806

	// maxSeriesTerms caps the atanh series; with the frexp reduction
	// |z| <= 1/3 and it converges in well under a hundred terms.
	maxSeriesTerms = 1000

	smallestNormalFloat32 = 0x1p-126
	rescale               = 0x1p64
	rescaleBits           = 64

	// nearOne bounds the band around 1 where ln(x) is smaller than the
	// polynomial's error.
	nearOne = 1.0 / 512
)

// Polynomial fit of ln(m) for m in [1, 2).
const (
	c0 = -1.49278
	c1 = 2.11263
	c2 = -0.729104
	c3 = 0.10969
)

// NaturalLog approximates ln(x) from the IEEE-754 single-precision layout
// of x: the unbiased exponent t contributes t·ln2 and the mantissa m in
// [1, 2) is fed to a cubic. The absolute error stays below 5e-4.
//
// Within 1/512 of 1 the cubic's error would swamp ln(x) and flip its sign,
// so there the result comes from the atanh series instead and keeps the
// sign of x-1.
//
// x must be positive and finite. NaturalLog(1) is exactly 0.
func NaturalLog(x float64) (float64, error) {
	if err := checkLogArg("natural log", "x", x); err != nil {
		return 0, err
	}
	if x == 1 {
		return 0, nil
	}
	if math.Abs(x-1) < nearOne {
		return atanhLog(x), nil
	}

	// Bring x into the normal float32 range; the shift goes back into t.
	shift := 0
	for x > math.MaxFloat32 {
		x /= rescale
		shift += rescaleBits
	}
	for x < smallestNormalFloat32 {
		x *= rescale
		shift -= rescaleBits
	}

	bits := math.Float32bits(float32(x))
	t := float64(int32(bits>>23)-127) + float64(shift)
	m := float64(math.Float32frombits(0x3f800000 | bits&0x7fffff))

	return c0 + (c1+(c2+c3*m)*m)*m + Ln2*t, nil
}

var ln2Series = atanhLog(2)

// NaturalLogSeries computes ln(x) with the series
// ln(v) = 2·Σ z^(2n+1)/(2n+1), z = (v-1)/(v+1), after splitting x into
// f·2^e with f in [0.5, 1). It is accurate to a few ulps.
func NaturalLogSeries(x float64) (float64, error) {
	if err := checkLogArg("natural log series", "x", x); err != nil {
		return 0, err
	}
	if x == 1 {
		return 0, nil
	}
	f, e := math.Frexp(x)
	return atanhLog(f) + float64(e)*ln2Series, nil
}

func atanhLog(v float64) float64 {
	z := (v - 1) / (v + 1)
	z2 := z * z
	pow := z
	sum := 0.0
	for n := 0; n < maxSeriesTerms; n++ {
		next := sum + pow/float64(2*n+1)
		if next == sum {
			break
		}
		sum = next
		pow *= z2
	}
	return 2 * sum
}

// Method selects the natural logarithm behind Logarithm.
type Method string

const (
	MethodBitHack Method = "bithack"
	MethodSeries  Method = "series"
)

// Methods lists the accepted Method values.
var Methods = []Method{MethodBitHack, MethodSeries}

// ParseMethod resolves a method name. The empty string selects MethodBitHack.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MethodBitHack, nil
	case MethodBitHack, MethodSeries:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown log method %q", numerics.ErrInvalidArgument, s)
	}
}

// NaturalLog evaluates ln(x) with the selected method.
func (m Method) NaturalLog(x float64) (float64, error) {
	switch m {
	case MethodSeries:
		return NaturalLogSeries(x)
	case MethodBitHack, "":
		return NaturalLog(x)
	default:
		return 0, fmt.Errorf("%w: unknown log method %q", numerics.ErrInvalidArgument, string(m))
	}
}

// Logarithm returns log_base(x) = NaturalLog(x) / NaturalLog(base).
//
// x and base must be positive and finite and base must differ from 1.
func Logarithm(x, base float64) (float64, error) {
	return LogarithmWith(MethodBitHack, x, base)
}

// LogarithmWith is Logarithm with a selectable natural log.
func LogarithmWith(m Method, x, base float64) (float64, error) {
	if err := checkLogArg("logarithm", "x", x); err != nil {
		return 0, err
	}
	if err := checkLogArg("logarithm", "base", base); err != nil {
		return 0, err
	}
	if base == 1 {
		return 0, numerics.InvalidArgument("logarithm", "base", base, "must not be 1")
	}

	num, err := m.NaturalLog(x)
	if err != nil {
		return 0, err
	}
	den, err := m.NaturalLog(base)
	if err != nil {
		return 0, err
	}
	return num / den, nil
}

func checkLogArg(op, param string, v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return numerics.InvalidArgument(op, param, v, "must be positive")
	}
	if math.IsInf(v, 1) {
		return numerics.InvalidArgument(op, param, v, "must be finite")
	}
	return nil
}
