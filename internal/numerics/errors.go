package numerics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned (wrapped) when an input violates an
// operation's documented domain.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a rejected input.
type ArgumentError struct {
	Op     string
	Param  string
	Value  float64
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", e.Op, e.Param, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// InvalidArgument builds an *ArgumentError.
func InvalidArgument(op, param string, value float64, reason string) error {
	return &ArgumentError{Op: op, Param: param, Value: value, Reason: reason}
}

// IsInvalidArgument reports whether err was caused by a rejected input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsDegenerate reports whether v is infinite or NaN. Such values are valid
// results of the approximations (for example tangent at pi/2), not errors.
func IsDegenerate(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}

// IsFinite reports whether v is neither infinite nor NaN.
func IsFinite(v float64) bool {
	return !IsDegenerate(v)
}
