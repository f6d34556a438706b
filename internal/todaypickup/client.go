// Package todaypickup is a typed client for the TodayPickup agency and mall
// APIs. It is the structured alternative to the byte-level relay in
// internal/service: one pooled transport per process, per-call credential
// injection, and JSON decoding with explicit error types.
package todaypickup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"todaypickup-relay-go/internal/model"
)

// requestTimeout bounds every upstream call made through this client.
const requestTimeout = 10 * time.Second

// ErrClientClosed is returned when a request is attempted after Close.
var ErrClientClosed = errors.New("todaypickup: client is closed")

// APIError is an upstream 4xx/5xx response. Status and Body are carried
// verbatim so callers can forward them unchanged.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todaypickup: upstream returned %d: %s", e.Status, e.Body)
}

// Client is the transport layer shared by the agency and mall wrappers. One
// instance serves the whole process; logical requests stay isolated because
// credentials are injected per call, never stored on the client.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
	closed atomic.Bool
}

// NewClient creates a Client bound to baseURL (the upstream /api prefix).
func NewClient(baseURL string, logger *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   rc,
		logger: logger.With("component", "todaypickup_client"),
	}
}

// requestOption customizes a single outbound call.
type requestOption func(*resty.Request)

// withBody sets a JSON request body.
func withBody(v any) requestOption {
	return func(r *resty.Request) { r.SetBody(v) }
}

// withQuery sets query parameters.
func withQuery(params url.Values) requestOption {
	return func(r *resty.Request) { r.SetQueryParamsFromValues(params) }
}

// withHeader sets an extra header; explicit headers win over injected ones.
func withHeader(key, value string) requestOption {
	return func(r *resty.Request) { r.SetHeader(key, value) }
}

// request issues one call against the upstream. creds.Token goes out as the
// Authorization header and creds.AgencyID as agencyId, when set. A 204 yields
// (nil, nil); any status >= 400 yields an *APIError carrying that exact status
// and body; every other status yields the raw JSON body. No retries.
func (c *Client) request(ctx context.Context, method, path string, creds model.Credentials, opts ...requestOption) (json.RawMessage, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	req := c.http.R().SetContext(ctx)
	if creds.Token != "" {
		req.SetHeader("Authorization", creds.Token)
	}
	if creds.AgencyID != "" {
		req.SetHeader("agencyId", creds.AgencyID)
	}
	for _, opt := range opts {
		opt(req)
	}

	c.logger.Debug("upstream request", "method", method, "path", path)

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("todaypickup: %s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	if status == http.StatusNoContent {
		return nil, nil
	}
	if status >= http.StatusBadRequest {
		return nil, &APIError{
			Status: status,
			Body:   append([]byte(nil), resp.Body()...),
		}
	}

	return json.RawMessage(append([]byte(nil), resp.Body()...)), nil
}

// Close releases the connection pool. Safe to call once per process at
// shutdown; the client refuses further use afterwards.
func (c *Client) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.http.GetClient().CloseIdleConnections()
}
