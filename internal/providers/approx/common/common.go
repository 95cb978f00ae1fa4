package common

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/GriffinCanCode/approx/internal/numerics"
	"github.com/GriffinCanCode/approx/internal/numerics/calculus"
	"github.com/GriffinCanCode/approx/internal/numerics/logexp"
	"github.com/GriffinCanCode/approx/internal/numerics/reference"
	"github.com/GriffinCanCode/approx/internal/numerics/trig"
	"github.com/GriffinCanCode/approx/internal/types"
	"github.com/spf13/cast"
)

// Settings are the numeric defaults tools fall back to when a parameter is
// omitted.
type Settings struct {
	Trig        trig.Config
	LogMethod   logexp.Method
	Step        float64
	Partitions  int
	Rule        calculus.Rule
	ExprTimeout time.Duration
}

// DefaultSettings mirrors the package defaults of the numerics core.
func DefaultSettings() Settings {
	return Settings{
		Trig:        trig.DefaultConfig(),
		LogMethod:   logexp.MethodBitHack,
		Step:        calculus.DefaultStep,
		Partitions:  calculus.DefaultPartitions,
		Rule:        calculus.Midpoint,
		ExprTimeout: 100 * time.Millisecond,
	}
}

// ApproxOps is embedded by every tool module.
type ApproxOps struct {
	Settings Settings
	Trig     *trig.Evaluator
}

// NewApproxOps validates s and builds the shared evaluator.
func NewApproxOps(s Settings) (*ApproxOps, error) {
	ev, err := trig.New(s.Trig)
	if err != nil {
		return nil, err
	}
	return &ApproxOps{Settings: s, Trig: ev}, nil
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// FromError turns a numerics argument error into a failed result. Other
// errors are returned as errors.
func FromError(err error) (*types.Result, error) {
	if numerics.IsInvalidArgument(err) {
		return Failure(err.Error())
	}
	return nil, err
}

// Approximation builds the standard result/reference/abs_error payload.
// Extra entries are merged in.
func Approximation(result, ref float64, extra map[string]interface{}) (*types.Result, error) {
	data := map[string]interface{}{
		"result":    Number(result),
		"reference": Number(ref),
		"abs_error": Number(reference.AbsError(result, ref)),
	}
	for k, v := range extra {
		data[k] = v
	}
	return Success(data)
}

// Number encodes v for JSON. Finite values pass through.
func Number(v float64) interface{} {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return v
	}
}

// GetNumber extracts a float64 from params. Any numeric type and numeric
// strings, including "NaN" and "+Inf", are accepted so values produced by
// Number round trip. Booleans are not numbers here.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok || val == nil {
		return 0, false
	}
	if _, isBool := val.(bool); isBool {
		return 0, false
	}
	if s, isString := val.(string); isString && strings.TrimSpace(s) == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(val)
	return f, err == nil
}

// RequireNumber is GetNumber with a failure message for a missing key.
func RequireNumber(params map[string]interface{}, key string) (float64, error) {
	v, ok := GetNumber(params, key)
	if !ok {
		return 0, fmt.Errorf("%s parameter required", key)
	}
	return v, nil
}

// GetInt extracts a whole number.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	v, ok := GetNumber(params, key)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}
