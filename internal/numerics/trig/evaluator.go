package trig

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

const (
	// DefaultTerms is the number of Taylor terms summed for sine and cosine.
	DefaultTerms = 100

	// DefaultInverseTerms is the number of terms summed for arcsine and arctangent.
	DefaultInverseTerms = 10000

	// MaxTerms bounds Config.Terms and Config.InverseTerms.
	MaxTerms = 10_000_000
)

// Config selects the truncation of every series in the package.
type Config struct {
	Terms        int `json:"terms" yaml:"terms" toml:"terms"`
	InverseTerms int `json:"inverse_terms" yaml:"inverse_terms" toml:"inverse_terms"`
	// PiIterations is the number of Leibniz terms used for pi inside
	// Arccosine. Zero means the math.Pi constant.
	PiIterations int `json:"pi_iterations" yaml:"pi_iterations" toml:"pi_iterations"`
}

// DefaultConfig returns the default truncation.
func DefaultConfig() Config {
	return Config{
		Terms:        DefaultTerms,
		InverseTerms: DefaultInverseTerms,
	}
}

// Validate checks that every term count is usable.
func (c Config) Validate() error {
	if c.Terms < 1 || c.Terms > MaxTerms {
		return numerics.InvalidArgument("trig config", "terms", float64(c.Terms),
			fmt.Sprintf("must be within [1, %d]", MaxTerms))
	}
	if c.InverseTerms < 1 || c.InverseTerms > MaxTerms {
		return numerics.InvalidArgument("trig config", "inverse_terms", float64(c.InverseTerms),
			fmt.Sprintf("must be within [1, %d]", MaxTerms))
	}
	if c.PiIterations < 0 || c.PiIterations > MaxPiIterations {
		return numerics.InvalidArgument("trig config", "pi_iterations", float64(c.PiIterations),
			fmt.Sprintf("must be within [0, %d]", MaxPiIterations))
	}
	return nil
}

// Evaluator computes the series with a fixed, validated Config.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	cfg    Config
	halfPi float64
}

// New validates cfg and returns an Evaluator for it.
func New(cfg Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Evaluator{cfg: cfg, halfPi: math.Pi / 2}
	if cfg.PiIterations > 0 {
		pi, err := ComputePi(cfg.PiIterations)
		if err != nil {
			return nil, err
		}
		e.halfPi = pi / 2
	}
	return e, nil
}

var defaultEvaluator = mustNew(DefaultConfig())

func mustNew(cfg Config) *Evaluator {
	e, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the shared evaluator built from DefaultConfig.
func Default() *Evaluator {
	return defaultEvaluator
}

// Config returns the evaluator's configuration.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Sine approximates sin(x) with Config.Terms Taylor terms.
func (e *Evaluator) Sine(x float64) float64 {
	result := 0.0
	term := x
	sign := 1.0
	for i := 1; i <= e.cfg.Terms; i++ {
		result += sign * term
		sign = -sign
		n := float64(2 * i)
		term *= x * x / (n * (n + 1))
	}
	return result
}

// Cosine approximates cos(x) with Config.Terms Taylor terms after the
// leading 1.
func (e *Evaluator) Cosine(x float64) float64 {
	result := 1.0
	term := 1.0
	sign := -1.0
	for i := 1; i <= e.cfg.Terms; i++ {
		n := float64(2 * i)
		term *= x * x / (n * (n - 1))
		result += sign * term
		sign = -sign
	}
	return result
}

// Arcsine approximates asin(x) for |x| <= 1.
func (e *Evaluator) Arcsine(x float64) (float64, error) {
	if err := checkUnit("arcsine", x); err != nil {
		return 0, err
	}

	result := x
	term := x
	for i := 1; i < e.cfg.InverseTerms; i++ {
		n := float64(2 * i)
		term *= x * x * (n - 1) / n
		result += term / (n + 1)
	}
	return result, nil
}

// Arctangent approximates atan(x) for |x| <= 1 with the Gregory series.
func (e *Evaluator) Arctangent(x float64) (float64, error) {
	if err := checkUnit("arctangent", x); err != nil {
		return 0, err
	}

	result := 0.0
	term := x
	sign := 1.0
	for i := 0; i < e.cfg.InverseTerms; i++ {
		result += sign * term
		sign = -sign
		n := float64(2 * i)
		term *= x * x * (n + 1) / (n + 3)
	}
	return result, nil
}

// Arccosine returns pi/2 - Arcsine(x).
func (e *Evaluator) Arccosine(x float64) (float64, error) {
	if err := checkUnit("arccosine", x); err != nil {
		return 0, err
	}
	asin, err := e.Arcsine(x)
	if err != nil {
		return 0, err
	}
	return e.halfPi - asin, nil
}

// Tangent is Sine/Cosine. Zero cosines give infinities.
func (e *Evaluator) Tangent(x float64) float64 {
	return e.Sine(x) / e.Cosine(x)
}

// Cotangent is 1/Tangent.
func (e *Evaluator) Cotangent(x float64) float64 {
	return 1 / e.Tangent(x)
}

// Secant is 1/Cosine.
func (e *Evaluator) Secant(x float64) float64 {
	return 1 / e.Cosine(x)
}

// Cosecant is 1/Sine.
func (e *Evaluator) Cosecant(x float64) float64 {
	return 1 / e.Sine(x)
}

func checkUnit(op string, x float64) error {
	if math.IsNaN(x) || x < -1 || x > 1 {
		return numerics.InvalidArgument(op, "x", x, "must be within [-1, 1]")
	}
	return nil
}
