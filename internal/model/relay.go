// Package model defines shared types for the relay.
package model

import (
	"context"
	"io"
	"net/http"
)

// RelayRequest represents a client request to be forwarded upstream. The body
// and headers are carried as-is; the relay never interprets their content.
// RawQuery is the original query string, appended to the outbound URL verbatim.
type RelayRequest struct {
	Ctx      context.Context
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     io.ReadCloser
}

// RelayResponse represents the upstream response to be streamed back.
type RelayResponse struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Credentials carries the per-request upstream credentials. The token goes out
// as the Authorization header; AgencyID, when set, goes out as agencyId.
// Neither is persisted; a Credentials value lives for one request only.
type Credentials struct {
	Token    string
	AgencyID string
}
