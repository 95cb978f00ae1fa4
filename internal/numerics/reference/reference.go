// Package reference computes library-grade values that the series and
// Riemann-sum approximations are measured against.
//
// Integrals use gonum's fixed Gauss-Legendre quadrature and derivatives use
// gonum's finite-difference package with its tuned central step.
package reference

import (
	"math"

	"github.com/GriffinCanCode/approx/internal/numerics"
	"github.com/GriffinCanCode/approx/internal/numerics/calculus"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

// QuadraturePoints is the number of Legendre nodes used by Integral.
const QuadraturePoints = 64

// Integral returns ∫_a^b f with the usual orientation: reversed bounds
// negate the result and a == b gives 0.
func Integral(f calculus.Function, a, b float64) float64 {
	switch {
	case numerics.IsDegenerate(a) || numerics.IsDegenerate(b):
		return math.NaN()
	case a == b:
		return 0
	case a > b:
		return -Integral(f, b, a)
	}
	return quad.Fixed(f.Eval, a, b, QuadraturePoints, nil, 0)
}

// Derivative returns f'(x) by a central difference with gonum's default
// step for that formula.
func Derivative(f calculus.Function, x float64) float64 {
	return fd.Derivative(f.Eval, x, &fd.Settings{Formula: fd.Central})
}

// AbsError is |approx - ref|, NaN when either side is not finite.
func AbsError(approx, ref float64) float64 {
	if numerics.IsDegenerate(approx) || numerics.IsDegenerate(ref) {
		return math.NaN()
	}
	return math.Abs(approx - ref)
}

// Agree reports whether approx matches ref within an absolute or relative
// tolerance of tol.
func Agree(approx, ref, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(approx, ref, tol, tol)
}

// SweepResult summarizes the error of an approximation over a grid.
type SweepResult struct {
	Points   int     `json:"points"`
	MaxError float64 `json:"max_error"`
	MeanErr  float64 `json:"mean_error"`
	WorstX   float64 `json:"worst_x"`
}

// Sweep evaluates approx and ref on n evenly spaced points of [lo, hi] and
// reports the largest and mean absolute difference. Points where either
// side is not finite are skipped.
func Sweep(approx, ref func(float64) float64, lo, hi float64, n int) SweepResult {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	errs := make([]float64, 0, n)
	var res SweepResult
	for _, x := range xs {
		e := AbsError(approx(x), ref(x))
		if math.IsNaN(e) {
			continue
		}
		if len(errs) == 0 || e > res.MaxError {
			res.MaxError = e
			res.WorstX = x
		}
		errs = append(errs, e)
	}

	res.Points = len(errs)
	if len(errs) > 0 {
		res.MeanErr = floats.Sum(errs) / float64(len(errs))
	}
	return res
}
