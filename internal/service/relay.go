// Package service implements the core relay forwarding logic.
package service

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"todaypickup-relay-go/internal/client"
	"todaypickup-relay-go/internal/config"
	"todaypickup-relay-go/internal/model"
)

// relayPathPrefix is the upstream path prefix for the generic relay. The typed
// endpoints use apiPathPrefix instead; both hang off the same base URL.
const (
	relayPathPrefix = "/v2/api-docs"
	apiPathPrefix   = "/api"
)

// hopByHopHeaders are never forwarded upstream. Matching is case-insensitive;
// every other inbound header is copied verbatim.
var hopByHopHeaders = map[string]bool{
	"connection":          true,
	"keep-alive":          true,
	"proxy-authenticate":  true,
	"proxy-authorization": true,
	"te":                  true,
	"trailers":            true,
	"transfer-encoding":   true,
	"upgrade":             true,
	"host":                true,
}

// RelayService handles the forwarding logic for generic relay requests.
type RelayService struct {
	client  *client.UpstreamClient
	cfg     *config.Config
	logger  *slog.Logger
	baseURL *url.URL
}

// NewRelayService creates a RelayService. When upstream.allowed_hosts is set,
// the configured base URL must resolve to one of those hosts; an empty list
// trusts the base URL as configured.
func NewRelayService(c *client.UpstreamClient, cfg *config.Config, logger *slog.Logger) (*RelayService, error) {
	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base_url: %w", err)
	}

	if len(cfg.Upstream.AllowedHosts) > 0 {
		allowed := false
		for _, h := range cfg.Upstream.AllowedHosts {
			if strings.EqualFold(h, u.Hostname()) {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("upstream host %q is not in allowed_hosts", u.Hostname())
		}
	}

	return &RelayService{
		client:  c,
		cfg:     cfg,
		logger:  logger.With("component", "relay_service"),
		baseURL: u,
	}, nil
}

// Forward sends a RelayRequest to the TodayPickup API and returns the response
// untouched: upstream status, body bytes and headers pass through verbatim.
// The caller is responsible for closing the response body.
//
// The inbound body is read in full and sent only when non-empty. Exactly one
// outbound call is made; there are no retries.
func (s *RelayService) Forward(rr *model.RelayRequest) (*model.RelayResponse, error) {
	var body []byte
	if rr.Body != nil {
		b, err := io.ReadAll(rr.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		body = b
	}

	upstreamURL := s.buildUpstreamURL(rr.Path, rr.RawQuery)
	header := forwardableHeaders(rr.Header)

	s.logger.Debug("forwarding request",
		"method", rr.Method,
		"path", rr.Path,
	)

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	resp, err := s.client.DoStream(rr.Ctx, rr.Method, upstreamURL, header, reader)
	if err != nil {
		return nil, fmt.Errorf("forward to upstream: %w", err)
	}

	return resp, nil
}

// buildUpstreamURL joins base + /v2/api-docs + the remaining path, carrying the
// original query string unmodified.
func (s *RelayService) buildUpstreamURL(path, rawQuery string) string {
	u := *s.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + relayPathPrefix + "/" + strings.TrimPrefix(path, "/")
	u.RawQuery = rawQuery
	return u.String()
}

// APIBaseURL returns base + /api, the prefix shared by the typed endpoints.
func (s *RelayService) APIBaseURL() string {
	u := *s.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + apiPathPrefix
	return u.String()
}

// ForwardAPI issues a typed endpoint call: same single-shot forwarding as
// Forward, but against base + /api + path with a caller-built header set and
// body. Used by the fixed agency/mall endpoint handlers.
func (s *RelayService) ForwardAPI(rr *model.RelayRequest) (*model.RelayResponse, error) {
	var body []byte
	if rr.Body != nil {
		b, err := io.ReadAll(rr.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		body = b
	}

	u := *s.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + apiPathPrefix + rr.Path
	u.RawQuery = rr.RawQuery

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	s.logger.Debug("forwarding typed request",
		"method", rr.Method,
		"path", rr.Path,
	)

	resp, err := s.client.DoStream(rr.Ctx, rr.Method, u.String(), rr.Header, reader)
	if err != nil {
		return nil, fmt.Errorf("forward to upstream: %w", err)
	}

	return resp, nil
}

// forwardableHeaders copies every inbound header except the hop-by-hop set.
func forwardableHeaders(src http.Header) http.Header {
	dst := make(http.Header, len(src))
	for key, vals := range src {
		if hopByHopHeaders[strings.ToLower(key)] {
			continue
		}
		dst[key] = vals
	}
	return dst
}
