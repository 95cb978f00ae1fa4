package programs

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/approx/internal/clamp"
	"github.com/GriffinCanCode/approx/internal/expr"
	"github.com/GriffinCanCode/approx/internal/numerics/calculus"
	"github.com/GriffinCanCode/approx/internal/numerics/reference"
)

// FTC demonstrates the Fundamental Theorem of Calculus: differentiating the
// accumulation function of f recovers f.
type FTC struct {
	// Expr replaces the function menu with a user expression in x.
	Expr string
}

func (FTC) Name() string { return "ftc" }

func (FTC) Description() string {
	return "This program demonstrates the Fundamental Theorem of Calculus. It approximates f(x), " +
		"f'(x), the integral of f on [a, b], the integral of f on [a, x] and the derivative of " +
		"that integral at x, which the theorem says equals f(x)."
}

func (p FTC) Run(ctx context.Context, s *Session) error {
	s.tr.Divider()
	f, label, err := p.function(ctx, s)
	if err != nil {
		return err
	}
	s.tr.Printf("The single-variable function which was selected is %s.", label)

	s.tr.Divider()
	part, x, err := ftcInterval(s)
	if err != nil {
		return err
	}
	s.tr.Printf("The interval [%s, %s] is divided into %d equally-sized partitions.",
		s.format(part.A), s.format(part.B), part.N)

	res, err := calculus.FundamentalTheorem(f, part, x, s.cfg.Calculus.Step)
	if err != nil {
		return err
	}

	a, b, fx := s.format(part.A), s.format(part.B), s.format(x)
	s.tr.Divider()
	s.report("f", fmt.Sprintf("f(%s)", fx), res.F, f.Eval(x))
	s.report("derivative", fmt.Sprintf("f'(%s)", fx), res.FPrime, reference.Derivative(f, x))
	s.tr.Divider()
	s.report("integral", fmt.Sprintf("integral of f(t) dt on [%s, %s]", a, b), res.Area, reference.Integral(f, part.A, part.B))
	s.report("integral", fmt.Sprintf("integral of f(t) dt on [%s, %s]", a, fx), res.Accumulated, reference.Integral(f, part.A, x))
	s.tr.Divider()
	s.report("ftc", fmt.Sprintf("d/dx (integral of f(t) dt on [%s, x]) at x = %s", a, fx), res.Recovered, res.F)

	if ef, ok := f.(*expr.Function); ok && ef.Err() != nil {
		s.tr.Notice("Evaluating the expression failed at least once: " + ef.Err().Error())
	}
	return nil
}

func (p FTC) function(ctx context.Context, s *Session) (calculus.Function, string, error) {
	if p.Expr != "" {
		f, err := expr.Compile(p.Expr, expr.WithTimeout(s.cfg.Server.ExprTimeout.Duration), expr.WithContext(ctx))
		if err != nil {
			return nil, "", err
		}
		return f, f.String(), nil
	}

	catalog := calculus.Catalog()
	s.tr.Printf("Enter the number which corresponds with one of the following functions:")
	for _, n := range catalog {
		s.tr.Printf("%d --> %s", n.Index, n.Label())
	}
	option, err := s.input("Enter Option Here:",
		clamp.Range{Name: "option", Min: 0, Max: float64(len(catalog) - 1), Integer: true, Default: 0})
	if err != nil {
		return nil, "", err
	}
	n, _ := calculus.ByIndex(int(option))
	return n, n.Label(), nil
}

// ftcInterval reads a, b and x. A bad endpoint resets the whole interval
// to [0, 1]; a bad x resets to b.
func ftcInterval(s *Session) (calculus.Partition, float64, error) {
	limit := s.cfg.Limits.MaxEndpoint
	a, err := s.input("Enter a value to store in variable a (the left end of the x-axis interval):",
		clamp.Symmetric("a", limit, 0))
	if err != nil {
		return calculus.Partition{}, 0, err
	}
	b, notice, err := s.inputNotice("Enter a value to store in variable b (the right end of the x-axis interval):",
		clamp.Range{Name: "b", Min: a, MinOpen: true, Max: limit, Default: 1})
	if err != nil {
		return calculus.Partition{}, 0, err
	}
	if notice != nil && a != 0 {
		s.tr.Notice("Hence, default program values are being used for both interval end-points: a = 0 and b = 1.")
		a = 0
	}

	x, err := s.input("Enter a value to store in variable x (a point inside of the selected x-axis interval):",
		clamp.Range{Name: "x", Min: a, Max: b, Default: b})
	if err != nil {
		return calculus.Partition{}, 0, err
	}
	return calculus.Partition{A: a, B: b, N: s.cfg.Calculus.Partitions}, x, nil
}
