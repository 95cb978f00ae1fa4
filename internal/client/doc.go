// Package client calls a remote approx tool server over HTTP.
//
// Built on go-resty/resty with a pooled transport from
// hashicorp/go-retryablehttp:
//   - Retries with backoff on connection errors, 429 and 5xx
//   - Client-side rate limiting with golang.org/x/time/rate
//   - JSON encoding with bytedance/sonic
//
// Example Usage:
//
//	c := client.New(cfg.Client, logger)
//	result, err := c.Execute(ctx, "approx.sin", map[string]interface{}{"x": 1.0})
package client
