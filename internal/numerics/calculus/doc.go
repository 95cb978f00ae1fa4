// Package calculus provides numerical differentiation and integration of
// single-variable functions, and the pieces needed to demonstrate the
// Fundamental Theorem of Calculus with them.
//
// Derivative and Integral capture their parameters and implement Function
// themselves, so the derivative of an accumulation function is just
//
//	integ, _ := calculus.NewIntegral(f, a, 1000)
//	d, _ := calculus.NewDerivative(integ, calculus.DefaultStep)
//	d.Eval(x) // ≈ f(x)
package calculus
