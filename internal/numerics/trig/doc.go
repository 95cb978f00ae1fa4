// Package trig approximates the circular functions and pi with truncated
// power series.
//
// Every series here sums a fixed number of terms chosen by Config; there is
// no convergence test. Sine and cosine use the Maclaurin series around zero,
// so their accuracy degrades as |x| grows (callers should bound the angle).
// Arcsine and arctangent are only defined on [-1, 1]; other inputs are
// rejected with numerics.ErrInvalidArgument. Tangent, cotangent, secant and
// cosecant are plain quotients and follow IEEE-754 division at their poles.
//
//	e, _ := trig.New(trig.Config{Terms: 20, InverseTerms: 1000})
//	s := e.Sine(0.5)
//	pi, _ := trig.ComputePi(1000)
package trig
