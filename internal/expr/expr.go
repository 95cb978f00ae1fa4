// Package expr compiles user-supplied single-variable expressions such as
// "x^2 + sin(x)" into calculus.Function values.
//
// Expressions are JavaScript evaluated by goja, with the Math members
// available unqualified and "^" read as exponentiation. Running user code,
// at compile time or in Eval, is bounded by a timeout and by the context
// given with WithContext. The first failure is kept for Err and every
// evaluation after it returns NaN without running.
package expr

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/GriffinCanCode/approx/internal/numerics"
	"github.com/dop251/goja"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultTimeout bounds a single evaluation.
	DefaultTimeout = 100 * time.Millisecond
	// MaxSourceLen bounds the expression text.
	MaxSourceLen = 1024
)

const errTimeout = "evaluation timeout exceeded"

const prelude = `var abs = Math.abs, sin = Math.sin, cos = Math.cos, tan = Math.tan,
	asin = Math.asin, acos = Math.acos, atan = Math.atan, sinh = Math.sinh,
	cosh = Math.cosh, tanh = Math.tanh, exp = Math.exp, log = Math.log,
	ln = Math.log, log10 = Math.log10, log2 = Math.log2, sqrt = Math.sqrt,
	cbrt = Math.cbrt, pow = Math.pow, floor = Math.floor, ceil = Math.ceil,
	min = Math.min, max = Math.max, PI = Math.PI, pi = Math.PI, E = Math.E;`

var (
	preludeProgram = goja.MustCompile("prelude", prelude, false)

	// Parsed bodies keyed by source. A goja.Program is immutable and can be
	// run by any number of runtimes.
	programs = cache.New(10*time.Minute, 20*time.Minute)
)

func compileBody(body string) (*goja.Program, error) {
	if p, ok := programs.Get(body); ok {
		return p.(*goja.Program), nil
	}
	p, err := goja.Compile("expr", "(function (x) { return ("+body+"\n); })", false)
	if err != nil {
		return nil, err
	}
	programs.SetDefault(body, p)
	return p, nil
}

// Function is a compiled expression. It is safe for concurrent use;
// evaluations are serialized on one goja runtime.
type Function struct {
	src     string
	timeout time.Duration
	ctx     context.Context

	mu  sync.Mutex
	vm  *goja.Runtime
	fn  goja.Callable
	err error

	// Guards interrupts so a timer or cancellation can only stop the
	// call it was armed for.
	intr    sync.Mutex
	seq     uint64
	running bool
}

// Option configures Compile.
type Option func(*Function)

// WithTimeout sets the per-evaluation timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Function) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithContext interrupts running code when ctx is done. Evaluations after
// that return NaN and Err reports the context error.
func WithContext(ctx context.Context) Option {
	return func(f *Function) {
		f.ctx = ctx
	}
}

// Compile parses src as an expression in x.
func Compile(src string, opts ...Option) (*Function, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%w: empty expression", numerics.ErrInvalidArgument)
	}
	if len(src) > MaxSourceLen {
		return nil, fmt.Errorf("%w: expression longer than %d bytes", numerics.ErrInvalidArgument, MaxSourceLen)
	}

	f := &Function{src: src, timeout: DefaultTimeout, vm: goja.New()}
	for _, opt := range opts {
		opt(f)
	}

	// Remove host hooks before any user code runs.
	for _, name := range []string{"require", "process", "module", "exports"} {
		if err := f.vm.Set(name, goja.Undefined()); err != nil {
			return nil, err
		}
	}
	if _, err := f.vm.RunProgram(preludeProgram); err != nil {
		return nil, fmt.Errorf("failed to initialize expression runtime: %w", err)
	}

	prog, err := compileBody(powers(src))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q: %v", numerics.ErrInvalidArgument, src, err)
	}
	if f.ctx != nil {
		context.AfterFunc(f.ctx, f.cancel)
	}

	// The body can close the wrapper and run code here, so it gets the
	// same bounds as Eval.
	val, err := f.run(func() (goja.Value, error) {
		return f.vm.RunProgram(prog)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: cannot evaluate %q: %v", numerics.ErrInvalidArgument, src, err)
	}
	fn, ok := goja.AssertFunction(val)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an expression", numerics.ErrInvalidArgument, src)
	}
	f.fn = fn
	return f, nil
}

// MustCompile is Compile that panics on error. For tests and constants.
func MustCompile(src string, opts ...Option) *Function {
	f, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Source returns the expression text as given.
func (f *Function) Source() string {
	return f.src
}

// String renders the expression like the catalog entries.
func (f *Function) String() string {
	return "f(x) = " + f.src
}

// Eval evaluates the expression at x. Runtime errors, timeouts and
// non-numeric results give NaN.
func (f *Function) Eval(x float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return math.NaN()
	}
	res, err := f.run(func() (goja.Value, error) {
		return f.fn(goja.Undefined(), f.vm.ToValue(x))
	})
	if err != nil {
		f.err = fmt.Errorf("evaluating %q at x=%v: %w", f.src, x, err)
		return math.NaN()
	}
	if res == nil || goja.IsUndefined(res) || goja.IsNull(res) {
		return math.NaN()
	}
	return res.ToFloat()
}

// Err returns the first evaluation error, if any.
func (f *Function) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// run executes call with the timeout armed. Interrupts that arrive after
// call returns are dropped, and any that landed are cleared before the
// runtime is used again.
func (f *Function) run(call func() (goja.Value, error)) (goja.Value, error) {
	f.intr.Lock()
	if f.ctx != nil {
		if err := f.ctx.Err(); err != nil {
			f.intr.Unlock()
			return nil, err
		}
	}
	f.seq++
	seq := f.seq
	f.running = true
	f.intr.Unlock()

	timer := time.AfterFunc(f.timeout, func() {
		f.interrupt(seq, errTimeout)
	})
	res, err := call()
	timer.Stop()

	f.intr.Lock()
	f.running = false
	f.intr.Unlock()
	f.vm.ClearInterrupt()
	return res, err
}

// interrupt stops call number seq if it is still running.
func (f *Function) interrupt(seq uint64, reason interface{}) {
	f.intr.Lock()
	defer f.intr.Unlock()
	if f.running && f.seq == seq {
		f.vm.Interrupt(reason)
	}
}

func (f *Function) cancel() {
	f.intr.Lock()
	defer f.intr.Unlock()
	if f.running {
		f.vm.Interrupt(f.ctx.Err())
	}
}
