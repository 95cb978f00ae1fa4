package calculus

import (
	"fmt"
	"math"
	"strings"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

// MaxPartitions bounds Partition.N.
const MaxPartitions = 1 << 24

// Rule picks the sample point inside each subinterval.
type Rule string

const (
	Left     Rule = "left"
	Right    Rule = "right"
	Midpoint Rule = "midpoint"
)

// Rules lists every supported Rule.
var Rules = []Rule{Left, Right, Midpoint}

// ParseRule resolves a rule name. The empty string selects Midpoint.
func ParseRule(s string) (Rule, error) {
	switch r := Rule(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return Midpoint, nil
	case Left, Right, Midpoint:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown rule %q", numerics.ErrInvalidArgument, s)
	}
}

// offset is where the sample sits inside a subinterval, as a fraction of dx.
func (r Rule) offset() (float64, bool) {
	switch r {
	case Left:
		return 0, true
	case Right:
		return 1, true
	case Midpoint:
		return 0.5, true
	}
	return 0, false
}

// Partition divides [A, B] into N equal subintervals.
type Partition struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	N int     `json:"n"`
}

// Validate enforces finite endpoints, A < B and 1 <= N <= MaxPartitions.
func (p Partition) Validate() error {
	switch {
	case math.IsNaN(p.A) || math.IsInf(p.A, 0):
		return numerics.InvalidArgument("riemann sum", "a", p.A, "must be finite")
	case math.IsNaN(p.B) || math.IsInf(p.B, 0):
		return numerics.InvalidArgument("riemann sum", "b", p.B, "must be finite")
	case p.A >= p.B:
		return numerics.InvalidArgument("riemann sum", "b", p.B, fmt.Sprintf("must be greater than a=%v", p.A))
	case p.N < 1 || p.N > MaxPartitions:
		return numerics.InvalidArgument("riemann sum", "n", float64(p.N),
			fmt.Sprintf("must be within [1, %d]", MaxPartitions))
	}
	return nil
}

// Width is the length of one subinterval.
func (p Partition) Width() float64 {
	return (p.B - p.A) / float64(p.N)
}

// RiemannSum approximates the integral of f over p by Σ f(sample_i)·dx.
func RiemannSum(f Function, p Partition, rule Rule) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	off, ok := rule.offset()
	if !ok {
		return 0, fmt.Errorf("%w: unknown rule %q", numerics.ErrInvalidArgument, string(rule))
	}

	dx := p.Width()
	sum := 0.0
	for i := 0; i < p.N; i++ {
		sum += f.Eval(p.A + (float64(i)+off)*dx)
	}
	return sum * dx, nil
}
