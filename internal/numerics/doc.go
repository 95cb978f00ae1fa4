// Package numerics is the root of the approximation core.
//
// The subpackages are pure functions over float64 scalars:
//   - trig: Taylor and Leibniz series for the circular functions and pi
//   - logexp: bit-level natural logarithm, exponential series, powers
//   - calculus: finite differences, Riemann sums, accumulation functions
//   - reference: gonum-backed reference values used to measure error
//
// Inputs outside an operation's domain are rejected with an error wrapping
// ErrInvalidArgument. Replacing bad inputs with defaults is left to callers.
// Infinite or NaN results are ordinary values; see IsDegenerate.
package numerics
