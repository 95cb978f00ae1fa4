package calculus

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

// DefaultPartitions is the subinterval count used by NewIntegral.
const DefaultPartitions = 1000

// Integral is the accumulation function t -> ∫_A^t F, evaluated by a
// Riemann sum with N subintervals on whatever interval t spans.
type Integral struct {
	F    Function
	A    float64
	N    int
	Rule Rule
}

// NewIntegral returns the midpoint accumulation function of f from a.
func NewIntegral(f Function, a float64, n int) (*Integral, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return nil, numerics.InvalidArgument("integral", "a", a, "must be finite")
	}
	if n < 1 || n > MaxPartitions {
		return nil, numerics.InvalidArgument("integral", "n", float64(n),
			fmt.Sprintf("must be within [1, %d]", MaxPartitions))
	}
	return &Integral{F: f, A: a, N: n, Rule: Midpoint}, nil
}

// Eval returns the signed area from A to t: zero at A and negative for
// t < A. Non-finite t gives NaN.
func (in *Integral) Eval(t float64) float64 {
	v, err := in.At(t)
	if err != nil {
		return math.NaN()
	}
	return v
}

// At is Eval with the underlying error exposed.
func (in *Integral) At(t float64) (float64, error) {
	switch {
	case math.IsNaN(t) || math.IsInf(t, 0):
		return 0, numerics.InvalidArgument("integral", "t", t, "must be finite")
	case t == in.A:
		return 0, nil
	case t > in.A:
		return RiemannSum(in.F, Partition{A: in.A, B: t, N: in.N}, in.Rule)
	default:
		v, err := RiemannSum(in.F, Partition{A: t, B: in.A, N: in.N}, in.Rule)
		return -v, err
	}
}

// FTCResult holds the quantities that illustrate the Fundamental Theorem
// of Calculus at one point x.
type FTCResult struct {
	X float64 `json:"x"`
	// F is f(x).
	F float64 `json:"f"`
	// FPrime is the central difference of f at x.
	FPrime float64 `json:"f_prime"`
	// Area is ∫_a^b f.
	Area float64 `json:"area"`
	// Accumulated is ∫_a^x f.
	Accumulated float64 `json:"accumulated"`
	// Recovered is the central difference of the accumulation function at x.
	// The theorem says it approximates F.
	Recovered float64 `json:"recovered"`
}

// FundamentalTheorem evaluates f, f', ∫_a^b f, ∫_a^x f and (d/dx ∫_a^x f)
// on partition p with difference step h. x must lie in [p.A, p.B].
func FundamentalTheorem(f Function, p Partition, x, h float64) (FTCResult, error) {
	if err := p.Validate(); err != nil {
		return FTCResult{}, err
	}
	if math.IsNaN(x) || x < p.A || x > p.B {
		return FTCResult{}, numerics.InvalidArgument("fundamental theorem", "x", x,
			fmt.Sprintf("must be within [%v, %v]", p.A, p.B))
	}

	deriv, err := NewDerivative(f, h)
	if err != nil {
		return FTCResult{}, err
	}
	integ := &Integral{F: f, A: p.A, N: p.N, Rule: Midpoint}
	area, err := integ.At(p.B)
	if err != nil {
		return FTCResult{}, err
	}
	accumulated, err := integ.At(x)
	if err != nil {
		return FTCResult{}, err
	}

	return FTCResult{
		X:           x,
		F:           f.Eval(x),
		FPrime:      deriv.Eval(x),
		Area:        area,
		Accumulated: accumulated,
		Recovered:   (&Derivative{F: integ, H: h}).Eval(x),
	}, nil
}
