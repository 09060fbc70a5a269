// Package erpclient talks to the ERP REST backend.
//
// GET requests are retried on transport failures and 5xx answers. Everything else is sent
// exactly once: creates are not idempotent on the backend.
package erpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"grainsync-console/internal/shared/contextutil"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const maxBodySize = 10 << 20

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	ReadRetries int
}

type Client struct {
	baseURL string
	reads   *retryablehttp.Client
	writes  *retryablehttp.Client
	logger  *zap.Logger
}

func New(cfg Config, logger ...*zap.Logger) *Client {
	l := zap.L().Named("erpclient")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("erpclient")
	}

	reads := newRetryClient(cfg.Timeout, l)
	reads.RetryMax = cfg.ReadRetries
	reads.CheckRetry = retryablehttp.DefaultRetryPolicy

	writes := newRetryClient(cfg.Timeout, l)
	writes.RetryMax = 0
	writes.CheckRetry = func(ctx context.Context, _ *http.Response, _ error) (bool, error) {
		return false, ctx.Err()
	}

	return &Client{
		baseURL: cfg.BaseURL,
		reads:   reads,
		writes:  writes,
		logger:  l,
	}
}

func newRetryClient(timeout time.Duration, l *zap.Logger) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.HTTPClient.Timeout = timeout
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.Logger = leveledLogger{l: l.Sugar()}
	// Keep the last response so non-2xx bodies can be reported.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

// Do sends body (may be nil) and returns the raw response body. Empty answers give nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body []byte) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var raw interface{}
	if body != nil {
		raw = body
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, raw)
	if err != nil {
		return nil, fmt.Errorf("build backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	client := c.writes
	if method == http.MethodGet {
		client = c.reads
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	c.logger.Debug("backend request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: errorMessage(data),
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return data, nil
}

// doJSON encodes in (when non-nil) and decodes the answer into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = b
	}

	data, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if out == nil || data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
