package serverless

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cgi"
	"net/url"
	"sort"
)

// StartResponse receives the status line and the ordered response headers
type StartResponse func(status string, headers []Header)

// Application is served through the environ calling convention: it must call
// start exactly once and return the body chunks in emission order.
type Application interface {
	Call(ctx context.Context, env Environ, body io.Reader, start StartResponse) ([][]byte, error)
}

// ApplicationFunc adapts a function to the Application interface
type ApplicationFunc func(ctx context.Context, env Environ, body io.Reader, start StartResponse) ([][]byte, error)

// Call implements Application
func (f ApplicationFunc) Call(ctx context.Context, env Environ, body io.Reader, start StartResponse) ([][]byte, error) {
	return f(ctx, env, body, start)
}

// HandlerApplication serves an http.Handler through the environ convention
type HandlerApplication struct {
	handler http.Handler
}

// NewHandlerApplication creates a new HandlerApplication
func NewHandlerApplication(handler http.Handler) *HandlerApplication {
	return &HandlerApplication{handler: handler}
}

// Call rebuilds the request from env, serves it and reports what the handler wrote
func (a *HandlerApplication) Call(ctx context.Context, env Environ, body io.Reader, start StartResponse) ([][]byte, error) {
	req, err := requestFromEnviron(env)
	if err != nil {
		return nil, err
	}
	if body == nil {
		req.Body = http.NoBody
	} else {
		req.Body = io.NopCloser(body)
	}
	req = req.WithContext(ctx)

	rec := newRecorder()
	a.handler.ServeHTTP(rec, req)
	rec.WriteHeader(http.StatusOK)

	start(statusLine(rec.code), headerPairs(rec.snapshot))
	return rec.chunks, nil
}

func requestFromEnviron(env Environ) (*http.Request, error) {
	params := make(map[string]string, len(env)+2)
	for k, v := range env {
		params[k] = v
	}
	target := &url.URL{Path: env["PATH_INFO"], RawQuery: env["QUERY_STRING"]}
	params["REQUEST_URI"] = target.RequestURI()
	if env["URL_SCHEME"] == "https" {
		params["HTTPS"] = "on"
	}

	req, err := cgi.RequestFromMap(params)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild request from environ: %w", err)
	}
	return req, nil
}

func statusLine(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

// headerPairs flattens h into pairs, names sorted, values in insertion order
func headerPairs(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]Header, 0, len(h))
	for _, name := range names {
		for _, v := range h[name] {
			pairs = append(pairs, Header{Name: name, Value: v})
		}
	}
	return pairs
}

// recorder captures a handler's output as chunks
type recorder struct {
	header   http.Header
	snapshot http.Header
	code     int
	chunks   [][]byte
}

func newRecorder() *recorder {
	return &recorder{header: make(http.Header)}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) WriteHeader(code int) {
	if r.snapshot != nil {
		return
	}
	r.code = code
	r.snapshot = r.header.Clone()
}

func (r *recorder) Write(p []byte) (int, error) {
	r.WriteHeader(http.StatusOK)
	if len(p) > 0 {
		r.chunks = append(r.chunks, bytes.Clone(p))
	}
	return len(p), nil
}

// Flush is a no-op; the whole body is returned at once
func (r *recorder) Flush() {}
