package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/GriffinCanCode/approx/internal/config"
	"github.com/GriffinCanCode/approx/internal/logging"
	"github.com/GriffinCanCode/approx/internal/types"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when the server does not know the tool.
var ErrNotFound = errors.New("tool not found")

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// Unwrap lets callers match 404s with errors.Is(err, ErrNotFound).
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client calls a remote tool server.
type Client struct {
	resty   *resty.Client
	limiter *rate.Limiter
	log     *logging.Logger
	mu      sync.RWMutex
}

// New creates a client for cfg.BaseURL. Transient failures (connection
// errors, 429 and 5xx) are retried up to cfg.Retries times.
func New(cfg config.ClientConfig, log *logging.Logger) *Client {
	if log == nil {
		log = logging.NewNop()
	}
	log = log.Named("client")

	// Pooled transport from retryablehttp; retries are driven by resty so
	// the request body is replayed correctly.
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil

	timeout := cfg.Timeout.Duration
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	r := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(max(cfg.Retries, 0)).
		SetRetryWaitTime(100*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("User-Agent", "approx-client/1.0").
		SetHeader("Accept", "application/json").
		SetTransport(retryClient.HTTPClient.Transport).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			code := resp.StatusCode()
			return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
		}).
		AddRetryHook(func(resp *resty.Response, err error) {
			var fields []zap.Field
			if resp != nil && resp.Request != nil {
				fields = append(fields, zap.Int("attempt", resp.Request.Attempt))
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			} else if resp != nil {
				fields = append(fields, zap.Int("status", resp.StatusCode()))
			}
			log.Debug("retrying request", fields...)
		})

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(int(cfg.RequestsPerSecond), 1))
	}

	return &Client{resty: r, limiter: limiter, log: log}
}

// BaseURL is the server address requests go to.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resty.BaseURL
}

// SetRateLimit changes the client-side request rate. Zero or less removes
// the limit.
func (c *Client) SetRateLimit(rps float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rps <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
}

func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	c.mu.RLock()
	limiter := c.limiter
	c.mu.RUnlock()

	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}
	return c.resty.R().SetContext(ctx), nil
}

type errorBody struct {
	Error string `json:"error"`
}

// Execute runs toolID on the server. A tool that fails on its arguments
// comes back as a Result with Success false and a nil error.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = map[string]interface{}{}
	}

	var result types.Result
	var failure errorBody
	resp, err := req.
		SetBody(types.ExecuteRequest{ToolID: toolID, Params: params}).
		SetResult(&result).
		SetError(&failure).
		Post("/services/execute")
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", toolID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("execute %s: %w", toolID, &StatusError{Code: resp.StatusCode(), Message: failure.Error})
	}

	c.log.Debug("tool executed",
		zap.String("tool", toolID),
		zap.String("request_id", resp.Header().Get("X-Request-ID")),
		zap.Bool("success", result.Success),
		zap.Duration("duration", resp.Time()))
	return &result, nil
}

type servicesBody struct {
	Services []types.Service `json:"services"`
}

// ListServices returns the server's service definitions.
func (c *Client) ListServices(ctx context.Context) ([]types.Service, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}

	var body servicesBody
	var failure errorBody
	resp, err := req.SetResult(&body).SetError(&failure).Get("/services")
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list services: %w", &StatusError{Code: resp.StatusCode(), Message: failure.Error})
	}
	return body.Services, nil
}
