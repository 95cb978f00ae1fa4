package calculus

import (
	"math"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

// DefaultStep is the central-difference step used when none is given.
const DefaultStep = 1e-5

// Derivative is the central-difference approximation of F'.
// It is itself a Function, so derivatives can be composed.
type Derivative struct {
	F Function
	H float64
}

// NewDerivative captures f and the step h, which must be positive and finite.
func NewDerivative(f Function, h float64) (*Derivative, error) {
	if !(h > 0) || math.IsInf(h, 1) {
		return nil, numerics.InvalidArgument("derivative", "h", h, "must be positive and finite")
	}
	return &Derivative{F: f, H: h}, nil
}

// Eval returns (F(x+h) - F(x-h)) / 2h.
func (d *Derivative) Eval(x float64) float64 {
	return (d.F.Eval(x+d.H) - d.F.Eval(x-d.H)) / (2 * d.H)
}
