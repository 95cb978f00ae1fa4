package calculus

// Function is a real-valued function of one real variable.
type Function interface {
	Eval(x float64) float64
}

// Func adapts an ordinary func to Function.
type Func func(float64) float64

// Eval calls f(x).
func (f Func) Eval(x float64) float64 {
	return f(x)
}
