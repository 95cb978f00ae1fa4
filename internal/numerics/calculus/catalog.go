package calculus

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/approx/internal/numerics"
)

// Named is a catalog entry.
type Named struct {
	Index   int      `json:"index" yaml:"index"`
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	F       Func     `json:"-" yaml:"-"`
}

// Eval calls the underlying function.
func (n Named) Eval(x float64) float64 {
	return n.F(x)
}

// Label renders the entry the way the programs print it.
func (n Named) Label() string {
	return "f(x) = " + n.Name
}

var catalog = []Named{
	{Index: 0, Name: "x^2", Aliases: []string{"square"}, F: func(x float64) float64 { return x * x }},
	{Index: 1, Name: "x^3", Aliases: []string{"cube"}, F: func(x float64) float64 { return x * x * x }},
	{Index: 2, Name: "sin(x)", Aliases: []string{"sin", "sine"}, F: math.Sin},
	{Index: 3, Name: "cos(x)", Aliases: []string{"cos", "cosine"}, F: math.Cos},
	{Index: 4, Name: "sqrt(x)", Aliases: []string{"sqrt"}, F: math.Sqrt},
	{Index: 5, Name: "2x + 3", Aliases: []string{"linear"}, F: func(x float64) float64 { return 2*x + 3 }},
}

// Catalog returns the built-in functions in index order.
func Catalog() []Named {
	out := make([]Named, len(catalog))
	copy(out, catalog)
	return out
}

// ByIndex returns catalog entry i.
func ByIndex(i int) (Named, bool) {
	if i < 0 || i >= len(catalog) {
		return Named{}, false
	}
	return catalog[i], true
}

// Lookup finds an entry by index ("2"), name ("sin(x)") or alias ("sin").
// Whitespace and case are ignored.
func Lookup(key string) (Named, error) {
	norm := normalizeName(key)
	if i, err := strconv.Atoi(norm); err == nil {
		if n, ok := ByIndex(i); ok {
			return n, nil
		}
		return Named{}, numerics.InvalidArgument("function lookup", "index", float64(i),
			fmt.Sprintf("must be within [0, %d]", len(catalog)-1))
	}
	for _, n := range catalog {
		if normalizeName(n.Name) == norm {
			return n, nil
		}
		for _, a := range n.Aliases {
			if a == norm {
				return n, nil
			}
		}
	}
	return Named{}, fmt.Errorf("%w: unknown function %q", numerics.ErrInvalidArgument, key)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
