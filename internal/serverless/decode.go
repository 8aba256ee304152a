package serverless

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/aws/aws-lambda-go/events"
)

// FromEvent decodes an API Gateway proxy event
func FromEvent(ev events.APIGatewayProxyRequest) (*Request, error) {
	req := &Request{
		Method:     ev.HTTPMethod,
		Path:       ev.Path,
		Scheme:     "https",
		RemoteAddr: ev.RequestContext.Identity.SourceIP,
	}

	if len(ev.MultiValueHeaders) > 0 {
		for _, name := range sortedKeys(ev.MultiValueHeaders) {
			for _, v := range ev.MultiValueHeaders[name] {
				req.Headers = append(req.Headers, Header{Name: name, Value: v})
			}
		}
	} else {
		for _, name := range sortedKeys(ev.Headers) {
			req.Headers = append(req.Headers, Header{Name: name, Value: ev.Headers[name]})
		}
	}
	req.Host = req.header("Host")

	query := url.Values{}
	if len(ev.MultiValueQueryStringParameters) > 0 {
		for k, values := range ev.MultiValueQueryStringParameters {
			query[k] = append(query[k], values...)
		}
	} else {
		for k, v := range ev.QueryStringParameters {
			query.Set(k, v)
		}
	}
	req.RawQuery = []byte(query.Encode())

	if ev.Body != "" {
		if ev.IsBase64Encoded {
			body, err := base64.StdEncoding.DecodeString(ev.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to decode event body: %w", err)
			}
			req.Body = body
		} else {
			req.Body = []byte(ev.Body)
		}
	}

	return req, nil
}

// FromHTTP decodes a raw socket-style request, consuming its body
func FromHTTP(r *http.Request) (*Request, error) {
	req := &Request{
		Method:     r.Method,
		Path:       r.URL.Path,
		RawQuery:   []byte(r.URL.RawQuery),
		Host:       r.Host,
		Scheme:     "http",
		RemoteAddr: r.RemoteAddr,
	}
	if r.TLS != nil {
		req.Scheme = "https"
	} else if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		req.Scheme = proto
	}

	if r.Host != "" {
		req.Headers = append(req.Headers, Header{Name: "Host", Value: r.Host})
	}
	for _, name := range sortedKeys(map[string][]string(r.Header)) {
		for _, v := range r.Header[name] {
			req.Headers = append(req.Headers, Header{Name: name, Value: v})
		}
	}

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body = body
	}

	return req, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
