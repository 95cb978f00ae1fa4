// Package approx provides the numerical approximation tools.
//
// This package is organized into specialized modules:
//   - operations: series trigonometry, Leibniz pi, logarithms, exponentials, powers
//   - analysis: derivatives, Riemann sums, accumulation functions, the FTC
//   - common: parameter helpers and the result format shared by all tools
//
// Every approximation is returned next to a reference value from the math
// package or from gonum (quadrature and finite differences), so callers see
// how far off the approximation is.
//
// Example Usage:
//
//	p := approx.NewDefaultProvider()
//	result, err := p.Execute(ctx, "approx.sin", map[string]interface{}{"x": 1.0}, nil)
package approx
