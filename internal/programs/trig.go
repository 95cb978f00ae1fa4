package programs

import (
	"context"
	"fmt"
	"math"

	"github.com/GriffinCanCode/approx/internal/clamp"
	"github.com/GriffinCanCode/approx/internal/numerics/trig"
)

// Trig prints the six trigonometric ratios and the three inverse functions
// of an angle, repeating for as long as the user asks to continue.
type Trig struct{}

func (Trig) Name() string { return "trig" }

func (Trig) Description() string {
	return "This program approximates the sine, cosine, tangent, cotangent, secant and cosecant " +
		"of an angle x (in radians) using truncated Taylor series, and the arctangent, arcsine and " +
		"arccosine of x using power series which converge only when |x| <= 1."
}

func (Trig) Run(ctx context.Context, s *Session) error {
	ev, err := trig.New(s.cfg.Trig())
	if err != nil {
		return err
	}
	angle := clamp.Symmetric("x", s.cfg.Limits.MaxAngle, 1)
	_, preset := s.presets["x"]

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.tr.Divider()
		x, err := s.input("Enter a value to store in variable x (an angle in radians):", angle)
		if err != nil {
			return err
		}
		s.tr.Divider()
		trigRatios(s, ev, x)
		s.tr.Divider()

		if preset || !s.confirm("Would you like to continue inputting program values? (Enter 1 if YES. Enter 0 if NO):") {
			return nil
		}
	}
}

func trigRatios(s *Session, ev *trig.Evaluator, x float64) {
	fx := s.format(x)
	label := func(name string) string { return fmt.Sprintf("%s(%s)", name, fx) }

	s.report("sine", label("sine"), ev.Sine(x), math.Sin(x))
	s.report("cosine", label("cosine"), ev.Cosine(x), math.Cos(x))
	s.report("tangent", label("tangent"), ev.Tangent(x), math.Tan(x))
	s.report("cotangent", label("cotangent"), ev.Cotangent(x), 1/math.Tan(x))
	s.report("secant", label("secant"), ev.Secant(x), 1/math.Cos(x))
	s.report("cosecant", label("cosecant"), ev.Cosecant(x), 1/math.Sin(x))

	inverse := []struct {
		name string
		f    func(float64) (float64, error)
		ref  func(float64) float64
	}{
		{"arctangent", ev.Arctangent, math.Atan},
		{"arcsine", ev.Arcsine, math.Asin},
		{"arccosine", ev.Arccosine, math.Acos},
	}
	for _, inv := range inverse {
		v, err := inv.f(x)
		if err != nil {
			s.undefined(label(inv.name), "the series only converges for |x| <= 1")
			continue
		}
		s.report(inv.name, label(inv.name), v, inv.ref(x))
	}
}
