package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// HTTPError is returned by DecodeJSON when the response carries an error
// status. Transport-level failures are reported as plain errors from Do.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// RetryPolicy configures transparent retries for transient failures.
type RetryPolicy struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryPolicy retries transient transport failures and the usual
// retryable statuses with exponential backoff.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          5 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       20 * time.Second,
		RetryableStatusCodes: []int{http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout},
	}
}

// Client is a small JSON-first HTTP client. Requests that complete with an
// error status are NOT turned into errors by Do; callers that need the raw
// response inspect it themselves, callers that just want a decoded payload
// use DecodeJSON.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	retry      *RetryPolicy
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL prepended to request paths.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers[key] = value }
}

// WithRetryPolicy enables retries. The zero state (no policy) performs each
// request exactly once, which is what protocol-sensitive callers want.
func WithRetryPolicy(policy *RetryPolicy) Option {
	return func(c *Client) { c.retry = policy }
}

// WithLogger sets the request logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client with the given options.
func New(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		log: zap.NewNop(),
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// Get performs a GET request against path.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Do performs a request. The returned error is transport-level only (request
// never completed); error statuses come back as a normal response.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	fullURL := c.baseURL + path
	if c.baseURL != "" && path != "" && !strings.HasPrefix(path, "/") {
		fullURL = c.baseURL + "/" + path
	}

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		payload = encoded
	}

	start := time.Now()
	var resp *http.Response

	attempt := func() error {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to create request"))
		}
		for key, value := range c.headers {
			req.Header.Set(key, value)
		}

		resp, err = c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if c.retry != nil {
			for _, code := range c.retry.RetryableStatusCodes {
				if resp.StatusCode == code {
					drain(resp)
					return fmt.Errorf("retryable status code: %d", resp.StatusCode)
				}
			}
		}
		return nil
	}

	var err error
	if c.retry != nil && c.retry.MaxRetries > 0 {
		policy := backoff.NewExponentialBackOff()
		policy.InitialInterval = c.retry.InitialInterval
		policy.MaxInterval = c.retry.MaxInterval
		policy.Multiplier = c.retry.Multiplier
		policy.MaxElapsedTime = c.retry.MaxElapsedTime
		err = backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.retry.MaxRetries)), ctx))
	} else {
		err = attempt()
	}

	duration := time.Since(start)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
		c.log.Warn("HTTP request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, err
	}

	c.log.Debug("HTTP request completed",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))
	return resp, nil
}

// DecodeJSON decodes a JSON response body into target, converting error
// statuses into an *HTTPError.
func (c *Client) DecodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        resp.Request.URL.String(),
			Method:     resp.Request.Method,
			Body:       string(bodyBytes),
		}
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

func drain(resp *http.Response) {
	if resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}
