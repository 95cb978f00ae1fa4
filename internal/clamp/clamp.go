// Package clamp replaces out-of-range program inputs with documented
// defaults and describes the substitution.
//
// The numerics packages reject bad inputs; the console programs instead
// keep going with a default, and this is where that policy lives.
package clamp

import (
	"fmt"
	"math"
	"strconv"
)

// Range is the accepted interval for one named input and the value that
// replaces anything outside it. NaN is never accepted.
type Range struct {
	Name    string
	Min     float64
	Max     float64
	MinOpen bool
	MaxOpen bool
	// Exclude lists values inside [Min, Max] that are still rejected.
	Exclude []float64
	// Integer rejects values with a fractional part.
	Integer bool
	Default float64
}

// Notice describes a substitution.
type Notice struct {
	Param   string  `json:"param"`
	Value   float64 `json:"value"`
	Default float64 `json:"default"`
	Range   string  `json:"range"`
}

// Message is the line the programs print for a notice.
func (n Notice) Message() string {
	return fmt.Sprintf("The value entered for %s (%s) is outside of %s. Hence, %s has been reset to %s.",
		n.Param, formatFloat(n.Value), n.Range, n.Param, formatFloat(n.Default))
}

// Contains reports whether v is acceptable.
func (r Range) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if v < r.Min || (r.MinOpen && v == r.Min) {
		return false
	}
	if v > r.Max || (r.MaxOpen && v == r.Max) {
		return false
	}
	for _, x := range r.Exclude {
		if v == x {
			return false
		}
	}
	if r.Integer && !Whole(v) {
		return false
	}
	return true
}

// Apply returns v unchanged when it is acceptable, otherwise Default and a
// notice describing the replacement.
func (r Range) Apply(v float64) (float64, *Notice) {
	if r.Contains(v) {
		return v, nil
	}
	return r.Default, &Notice{Param: r.Name, Value: v, Default: r.Default, Range: r.String()}
}

// String renders the interval in mathematical notation, e.g. "(0, 10000]".
func (r Range) String() string {
	lo, hi := "[", "]"
	if r.MinOpen {
		lo = "("
	}
	if r.MaxOpen {
		hi = ")"
	}
	s := lo + formatFloat(r.Min) + ", " + formatFloat(r.Max) + hi
	for _, x := range r.Exclude {
		s += " excluding " + formatFloat(x)
	}
	if r.Integer {
		s = "the integers in " + s
	}
	return s
}

// Finite accepts every finite value.
func Finite(name string, def float64) Range {
	return Range{Name: name, Min: -math.MaxFloat64, Max: math.MaxFloat64, Default: def}
}

// Symmetric is the closed interval [-limit, limit].
func Symmetric(name string, limit, def float64) Range {
	return Range{Name: name, Min: -limit, Max: limit, Default: def}
}

// Whole reports whether v is an integer value that fits in an int.
func Whole(v float64) bool {
	return v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
