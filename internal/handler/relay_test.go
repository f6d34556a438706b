package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"todaypickup-relay-go/internal/client"
	"todaypickup-relay-go/internal/config"
	"todaypickup-relay-go/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRelayService builds a RelayService pointed at the given upstream URL.
func newRelayService(t *testing.T, upstreamURL string, timeoutSeconds int) *service.RelayService {
	t.Helper()
	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL:         upstreamURL,
			TimeoutSeconds:  timeoutSeconds,
			IdleConnections: 10,
		},
	}
	uc := client.NewUpstreamClient(cfg, testLogger(), nil)
	svc, err := service.NewRelayService(uc, cfg, testLogger())
	if err != nil {
		t.Fatalf("NewRelayService() error = %v", err)
	}
	return svc
}

// newRelayEcho registers the relay handler on a fresh Echo instance so that
// wildcard path params resolve the way they do in production.
func newRelayEcho(t *testing.T, upstreamURL string, timeoutSeconds int) *echo.Echo {
	t.Helper()
	h := NewRelayHandler(newRelayService(t, upstreamURL, timeoutSeconds), testLogger())
	e := echo.New()
	e.Any("/relay/*", h.Handle)
	return e
}

func TestRelayHandler_VerbatimRoundTrip(t *testing.T) {
	var gotPath, gotQuery, gotBody, gotClientHeader string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotClientHeader = r.Header.Get("X-Client-Header")

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Upstream-Extra", "yes")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"echo":true}`))
	}))
	defer upstream.Close()

	e := newRelayEcho(t, upstream.URL, 10)

	req := httptest.NewRequest(http.MethodPost, "/relay/search/run?q=seoul&p=%2B1", strings.NewReader(`{"k":"v"}`))
	req.Header.Set("X-Client-Header", "kept")
	req.Header.Set("Connection", "keep-alive")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if gotPath != "/v2/api-docs/search/run" {
		t.Errorf("upstream path = %q, want %q", gotPath, "/v2/api-docs/search/run")
	}
	if gotQuery != "q=seoul&p=%2B1" {
		t.Errorf("upstream query = %q, want %q", gotQuery, "q=seoul&p=%2B1")
	}
	if gotBody != `{"k":"v"}` {
		t.Errorf("upstream body = %q, want %q", gotBody, `{"k":"v"}`)
	}
	if gotClientHeader != "kept" {
		t.Errorf("X-Client-Header = %q, want %q", gotClientHeader, "kept")
	}

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	if v := rec.Header().Get("X-Upstream-Extra"); v != "yes" {
		t.Errorf("X-Upstream-Extra = %q, want %q", v, "yes")
	}
	if rec.Body.String() != `{"echo":true}` {
		t.Errorf("body = %q, want %q", rec.Body.String(), `{"echo":true}`)
	}
}

func TestRelayHandler_UpstreamErrorStatusPassedThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"nope"}`))
	}))
	defer upstream.Close()

	e := newRelayEcho(t, upstream.URL, 10)

	req := httptest.NewRequest(http.MethodGet, "/relay/anything", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d (upstream status verbatim)", rec.Code, http.StatusBadRequest)
	}
	if rec.Body.String() != `{"detail":"nope"}` {
		t.Errorf("body = %q, want upstream body verbatim", rec.Body.String())
	}
}

func TestRelayHandler_Timeout504(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	e := newRelayEcho(t, upstream.URL, 1)

	req := httptest.NewRequest(http.MethodGet, "/relay/slow", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(body["error"], "Gateway timeout") {
		t.Errorf("error = %q, want prefix %q", body["error"], "Gateway timeout")
	}
}

func TestRelayHandler_ConnectError502(t *testing.T) {
	e := newRelayEcho(t, "http://127.0.0.1:1", 1)

	req := httptest.NewRequest(http.MethodGet, "/relay/unreachable", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(body["error"], "Bad gateway") {
		t.Errorf("error = %q, want prefix %q", body["error"], "Bad gateway")
	}
}

func TestRelayHandler_HostHeaderNotForwarded(t *testing.T) {
	var gotHost string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	e := newRelayEcho(t, upstream.URL, 10)

	req := httptest.NewRequest(http.MethodGet, "/relay/docs", http.NoBody)
	req.Host = "relay.local"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if gotHost == "relay.local" {
		t.Error("inbound Host header leaked to the upstream")
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestRelayHandler_BodyReadError500(t *testing.T) {
	var upstreamCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		upstreamCalls++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	e := newRelayEcho(t, srv.URL, 10)

	req := httptest.NewRequest(http.MethodPost, "/relay/v2/search", brokenReader{})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Errorf("body = %q, want internal server error message", rec.Body.String())
	}
	if upstreamCalls != 0 {
		t.Errorf("upstream calls = %d, want 0 when the request body cannot be read", upstreamCalls)
	}
}
