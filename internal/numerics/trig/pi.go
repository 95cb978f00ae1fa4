package trig

import (
	"fmt"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

// MaxPiIterations bounds ComputePi so a call always terminates quickly.
const MaxPiIterations = 100_000_000

// ComputePi sums the first iterations terms of the Leibniz series
// 4·Σ (-1)^i / (2i+1). ComputePi(0) is 0.
func ComputePi(iterations int) (float64, error) {
	if iterations < 0 || iterations > MaxPiIterations {
		return 0, numerics.InvalidArgument("compute pi", "iterations", float64(iterations),
			fmt.Sprintf("must be within [0, %d]", MaxPiIterations))
	}

	sum := 0.0
	sign := 1.0
	for i := 0; i < iterations; i++ {
		sum += sign / float64(2*i+1)
		sign = -sign
	}
	return 4 * sum, nil
}
