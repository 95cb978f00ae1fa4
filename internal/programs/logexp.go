package programs

import (
	"context"
	"fmt"
	"math"

	"github.com/GriffinCanCode/approx/internal/clamp"
	"github.com/GriffinCanCode/approx/internal/numerics/logexp"
	"github.com/GriffinCanCode/approx/internal/numerics/trig"
)

// Logarithm computes log_base(x) by change of base over an approximate
// natural logarithm.
type Logarithm struct {
	// Method overrides the configured natural logarithm method.
	Method string
}

func (Logarithm) Name() string { return "logarithm" }

func (Logarithm) Description() string {
	return "This program approximates the logarithm of x to a given base as ln(x) / ln(base), " +
		"where ln is computed from the IEEE-754 bit pattern of its argument."
}

func (l Logarithm) Run(_ context.Context, s *Session) error {
	name := l.Method
	if name == "" {
		name = s.cfg.Series.LogMethod
	}
	method, err := logexp.ParseMethod(name)
	if err != nil {
		return err
	}

	s.tr.Divider()
	x, err := s.input("Enter a value to store in variable x (the logarithm argument):",
		clamp.Range{Name: "x", Min: 0, Max: s.cfg.Limits.MaxLogArgument, MinOpen: true, Default: 1})
	if err != nil {
		return err
	}
	base, err := s.input("Enter a value to store in variable base (the logarithmic base):",
		clamp.Range{Name: "base", Min: 0, Max: s.cfg.Limits.MaxLogBase, MinOpen: true, Exclude: []float64{1}, Default: 2})
	if err != nil {
		return err
	}
	s.tr.Divider()

	label := fmt.Sprintf("log_%s(%s)", s.format(base), s.format(x))
	v, err := logexp.LogarithmWith(method, x, base)
	if err != nil {
		s.undefined(label, err.Error())
		return nil
	}
	s.tr.Printf("ln method: %s", method)
	s.report("logarithm", label, v, math.Log(x)/math.Log(base))
	return nil
}

// Power computes base^exponent from the approximate exponential and
// logarithm, with exact repeated multiplication for integer exponents.
type Power struct{}

func (Power) Name() string { return "power" }

func (Power) Description() string {
	return "This program approximates base raised to the power of exponent. Integer exponents " +
		"use repeated multiplication; other exponents use exp(exponent * ln(base))."
}

func (Power) Run(_ context.Context, s *Session) error {
	s.tr.Divider()
	base, err := s.input("Enter a value to store in variable base:", clamp.Finite("base", 1))
	if err != nil {
		return err
	}
	exponent, err := s.input("Enter a value to store in variable exponent:", clamp.Finite("exponent", 1))
	if err != nil {
		return err
	}
	s.tr.Divider()

	label := fmt.Sprintf("%s^%s", s.format(base), s.format(exponent))
	v, err := logexp.Power(base, exponent)
	if err != nil {
		s.undefined(label, err.Error())
		return nil
	}
	s.report("power", label, v, math.Pow(base, exponent))
	return nil
}

// Pi approximates π with the Leibniz series.
type Pi struct{}

func (Pi) Name() string { return "pi" }

func (Pi) Description() string {
	return "This program approximates pi with the first n terms of the Leibniz series " +
		"4 * (1 - 1/3 + 1/5 - 1/7 + ...) and compares the result with the literal value of pi."
}

func (Pi) Run(_ context.Context, s *Session) error {
	s.tr.Divider()
	n, err := s.input("Enter a value to store in variable iterations (the number of series terms):",
		clamp.Range{Name: "iterations", Min: 0, Max: float64(s.cfg.Limits.MaxPiIterations), Integer: true, Default: 1000})
	if err != nil {
		return err
	}
	s.tr.Divider()

	label := fmt.Sprintf("pi(%d)", int(n))
	v, err := trig.ComputePi(int(n))
	if err != nil {
		s.undefined(label, err.Error())
		return nil
	}
	// The error against the literal is the point of this program.
	s.tr.Result(label, s.format(v))
	s.tr.Result("|"+label+" - pi|", s.format(math.Abs(v-math.Pi)))
	if s.metrics != nil {
		s.metrics.RecordEvaluation(s.program, "pi")
	}
	return nil
}
