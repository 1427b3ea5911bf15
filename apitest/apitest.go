// Package apitest provides test helpers that drive a dispatch.Server over
// HTTP through the httpx transport.
package apitest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bjaus/dispatch"
	"github.com/bjaus/dispatch/httpx"
)

// Client wraps an httptest.Server for convenient end-to-end testing.
type Client struct {
	Server *httptest.Server
}

// NewClient starts a test HTTP server for s.
func NewClient(t testing.TB, s *dispatch.Server, opts ...httpx.Option) *Client {
	t.Helper()
	srv := httptest.NewServer(httpx.NewHandler(s, opts...))
	t.Cleanup(srv.Close)
	return &Client{Server: srv}
}

// Response holds the outcome of a request.
type Response struct {
	Status  int
	Headers http.Header
	Body    string
}

// Get sends a GET request whose body is the wire encoding of args.
func Get(t testing.TB, c *Client, path string, args ...any) *Response {
	t.Helper()
	return do(t, c, http.MethodGet, path, encode(t, args))
}

// Post sends a POST request whose body is the wire encoding of args.
func Post(t testing.TB, c *Client, path string, args ...any) *Response {
	t.Helper()
	return do(t, c, http.MethodPost, path, encode(t, args))
}

// PostRaw sends a POST request with an arbitrary body.
func PostRaw(t testing.TB, c *Client, path string, body []byte) *Response {
	t.Helper()
	return do(t, c, http.MethodPost, path, body)
}

func encode(t testing.TB, args []any) []byte {
	t.Helper()
	body, err := dispatch.Encode(args...)
	if err != nil {
		t.Fatalf("apitest: encode body: %v", err)
	}
	return body
}

func do(t testing.TB, c *Client, method, path string, body []byte) *Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, c.Server.URL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("apitest: create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("apitest: execute request: %v", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.Errorf("apitest: close body: %v", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("apitest: read body: %v", err)
	}

	return &Response{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Body:    string(raw),
	}
}
