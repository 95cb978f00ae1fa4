package trig

// Sine evaluates Default().Sine.
func Sine(x float64) float64 { return defaultEvaluator.Sine(x) }

// Cosine evaluates Default().Cosine.
func Cosine(x float64) float64 { return defaultEvaluator.Cosine(x) }

// Tangent evaluates Default().Tangent.
func Tangent(x float64) float64 { return defaultEvaluator.Tangent(x) }

// Cotangent evaluates Default().Cotangent.
func Cotangent(x float64) float64 { return defaultEvaluator.Cotangent(x) }

// Secant evaluates Default().Secant.
func Secant(x float64) float64 { return defaultEvaluator.Secant(x) }

// Cosecant evaluates Default().Cosecant.
func Cosecant(x float64) float64 { return defaultEvaluator.Cosecant(x) }

// Arcsine evaluates Default().Arcsine.
func Arcsine(x float64) (float64, error) { return defaultEvaluator.Arcsine(x) }

// Arctangent evaluates Default().Arctangent.
func Arctangent(x float64) (float64, error) { return defaultEvaluator.Arctangent(x) }

// Arccosine evaluates Default().Arccosine.
func Arccosine(x float64) (float64, error) { return defaultEvaluator.Arccosine(x) }
