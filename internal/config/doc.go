// Package config provides layered configuration for the approx binaries.
//
// Values come from, in increasing precedence:
//   - Default(): built-in values
//   - an optional TOML (.toml) or YAML (.yaml, .yml) file
//   - APPROX_* environment variables
//
// Command-line flags override all three in the binaries themselves.
//
// Configuration Sections:
//   - Logging: level and development mode
//   - Series: term counts and the logarithm method
//   - Limits: input ranges the console programs clamp to
//   - Calculus: difference step, partitions and Riemann rule
//   - Output: printed precision, transcript directory, color
//   - Server, RateLimit: HTTP tool service
//   - Client: remote tool execution
//
// Example Usage:
//
//	cfg, err := config.Load("approx.toml")
//	if err != nil {
//	    return err
//	}
//	eval, _ := trig.New(cfg.Trig())
//
// Environment Variables:
//   - APPROX_LOG_LEVEL, APPROX_LOG_DEV
//   - APPROX_TERMS, APPROX_INVERSE_TERMS, APPROX_PI_ITERATIONS, APPROX_LOG_METHOD
//   - APPROX_MAX_ANGLE, APPROX_MAX_ENDPOINT, APPROX_MAX_LOG_ARGUMENT, APPROX_MAX_LOG_BASE
//   - APPROX_STEP, APPROX_PARTITIONS, APPROX_RULE
//   - APPROX_PRECISION, APPROX_TRANSCRIPT_DIR, APPROX_COLOR
//   - APPROX_HOST, APPROX_PORT, APPROX_EXPR_TIMEOUT
//   - APPROX_REMOTE_URL, APPROX_REMOTE_TIMEOUT, APPROX_REMOTE_RETRIES, APPROX_REMOTE_RPS
//   - APPROX_RATE_LIMIT_RPS, APPROX_RATE_LIMIT_BURST, APPROX_RATE_LIMIT_ENABLED
package config
