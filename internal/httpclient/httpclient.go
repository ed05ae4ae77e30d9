// Package httpclient issues outbound HTTP calls with bounded retry,
// exponential backoff and a circuit breaker, classifying failures into
// retryable and terminal ones. It never panics past its boundary: callers
// get parsed JSON or a descriptive, classified error.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"
)

// Classified failure sentinels. Callers can match with errors.Is.
var (
	ErrRateLimited = errors.New("rate limit exceeded, please try again in a few moments")
	ErrForbidden   = errors.New("access forbidden, please check your API key permissions")
	ErrNotFound    = errors.New("endpoint not found, please check the API URL")
	ErrServerError = errors.New("server error, please try again later")
	ErrUnavailable = errors.New("service temporarily unavailable, please try again later")
	ErrCircuitOpen = errors.New("circuit breaker open")

	errUnsupportedMethod = errors.New("unsupported HTTP method")
)

// Config controls the retry schedule. MaxRetries is the total number of
// attempts; 0 or 1 still attempts exactly once.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Timeout    time.Duration
}

// DefaultConfig mirrors the schedule the upstream providers expect:
// 3 attempts, 1s initial delay doubling up to 60s.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   60 * time.Second,
		Timeout:    10 * time.Second,
	}
}

// Request describes a single logical outbound call.
type Request struct {
	Method  string
	URL     string
	Params  url.Values
	Headers map[string]string
	Body    any // JSON-encoded when non-nil

	// ErrorPrefix is prepended to every classified failure message.
	ErrorPrefix string

	// Timeout overrides the per-attempt timeout when positive.
	Timeout time.Duration
}

// Client executes requests with resilience. One Client is shared across all
// callers; each Do call retries sequentially with at most one in-flight
// attempt at a time.
type Client struct {
	httpClient *http.Client
	cfg        Config
	circuit    *gobreaker.CircuitBreaker
	clock      clockwork.Clock
}

// New creates a Client. Zero-value config fields fall back to defaults.
func New(httpClient *http.Client, cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = def.MaxDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "outbound",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		circuit:    cb,
		clock:      clockwork.NewRealClock(),
	}
}

// attemptKind tags the outcome of a single attempt.
type attemptKind int

const (
	attemptSuccess attemptKind = iota
	attemptRetryable
	attemptTerminal
)

type attemptResult struct {
	body json.RawMessage
	kind attemptKind
	err  error
}

// Do executes the request under the retry schedule and returns the parsed
// JSON body. All failures come back as errors carrying the request's
// ErrorPrefix and a classification; only an unsupported method fails before
// the first attempt.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	switch req.Method {
	case http.MethodGet, http.MethodPost:
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedMethod, req.Method)
	}

	attempts := c.cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if ctx.Err() != nil {
			return nil, c.fail(req, ctx.Err())
		}

		res := c.attempt(ctx, req)
		switch res.kind {
		case attemptSuccess:
			return res.body, nil
		case attemptTerminal:
			return nil, c.fail(req, res.err)
		}

		lastErr = res.err
		if attempt == attempts-1 {
			break
		}

		delay := backoffDelay(c.cfg, attempt)
		log.Printf("WARN: %s %s failed (attempt %d/%d): %v; retrying in %s",
			req.Method, req.URL, attempt+1, attempts, res.err, delay)

		select {
		case <-ctx.Done():
			return nil, c.fail(req, ctx.Err())
		case <-c.clock.After(delay):
		}
	}

	return nil, c.fail(req, lastErr)
}

// attempt performs exactly one HTTP exchange and classifies the outcome.
func (c *Client) attempt(ctx context.Context, req Request) attemptResult {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := buildHTTPRequest(attemptCtx, req)
	if err != nil {
		return attemptResult{kind: attemptTerminal, err: err}
	}

	// Failures surface as errors inside Execute so the breaker counts them.
	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(httpReq)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, readErr
		}
		if resp.StatusCode != http.StatusOK {
			return nil, statusError(resp.StatusCode)
		}
		return json.RawMessage(body), nil
	})

	if err == nil {
		return attemptResult{kind: attemptSuccess, body: result.(json.RawMessage)}
	}
	return attemptResult{kind: classifyFailure(err), err: wrapCircuitErr(err)}
}

// statusError maps a non-200 response status to its classified sentinel.
func statusError(status int) error {
	switch status {
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusInternalServerError:
		return ErrServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return fmt.Errorf("HTTP %d error", status)
	}
}

// classifyFailure tags an attempt failure. Permission and not-found errors
// never retry; an open circuit means further attempts are pointless. Every
// other failure, including timeouts and connection errors, is retryable.
func classifyFailure(err error) attemptKind {
	switch {
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotFound):
		return attemptTerminal
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return attemptTerminal
	default:
		return attemptRetryable
	}
}

func wrapCircuitErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	return err
}

// backoffDelay is a pure function of the attempt index: base doubled each
// retry, never below base nor above the cap.
func backoffDelay(cfg Config, attempt int) time.Duration {
	delay := cfg.BaseDelay << uint(attempt)
	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	if delay < cfg.BaseDelay {
		delay = cfg.BaseDelay
	}
	return delay
}

func buildHTTPRequest(ctx context.Context, req Request) (*http.Request, error) {
	u := req.URL
	if len(req.Params) > 0 {
		u = fmt.Sprintf("%s?%s", req.URL, req.Params.Encode())
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, err
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

func (c *Client) fail(req Request, reason error) error {
	prefix := req.ErrorPrefix
	if prefix == "" {
		prefix = "request failed"
	}
	return fmt.Errorf("%s: %w", prefix, reason)
}
