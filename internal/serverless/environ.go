// Package serverless adapts platform-delivered requests to the WSGI-like
// calling convention the application is served through and converts what the
// application emits back into a platform response.
package serverless

import (
	"net"
	"strconv"
	"strings"
)

// Environ is the request environment handed to an Application
type Environ map[string]string

// Header is a single header pair. Order and duplicates are significant.
type Header struct {
	Name  string
	Value string
}

// Convention selects how the platform delivered the request
type Convention int

const (
	// ConventionEvent is a structured event object (API Gateway proxy shape)
	ConventionEvent Convention = iota
	// ConventionSocket is a raw socket-style request (Vercel Go runtime)
	ConventionSocket
)

// String returns the convention name used in logs
func (c Convention) String() string {
	switch c {
	case ConventionEvent:
		return "event"
	case ConventionSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// Request is the platform-neutral request descriptor both conventions decode into
type Request struct {
	Method     string
	Path       string
	RawQuery   []byte
	Headers    []Header
	Body       []byte
	Host       string
	Scheme     string
	RemoteAddr string
}

// header returns the first value of the named header, matched case-insensitively
func (r *Request) header(name string) string {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

const (
	defaultMethod  = "GET"
	defaultPath    = "/"
	defaultHost    = "localhost"
	serverProtocol = "HTTP/1.1"
	contentTypeKey = "CONTENT_TYPE"
	contentLenKey  = "CONTENT_LENGTH"
	cookieKey      = "HTTP_COOKIE"
)

// NewEnviron builds the environment for req. The convention decides where the
// server identity comes from: the request host for sockets, the forwarding
// headers for events.
func NewEnviron(req *Request, conv Convention) Environ {
	env := Environ{
		"REQUEST_METHOD":  orDefault(req.Method, defaultMethod),
		"PATH_INFO":       orDefault(req.Path, defaultPath),
		"QUERY_STRING":    strings.ToValidUTF8(string(req.RawQuery), "\uFFFD"),
		"SERVER_PROTOCOL": serverProtocol,
	}

	for _, h := range req.Headers {
		key := environKey(h.Name)
		if prev, ok := env[key]; ok {
			sep := ","
			if key == cookieKey {
				sep = "; "
			}
			env[key] = prev + sep + h.Value
			continue
		}
		env[key] = h.Value
	}

	if len(req.Body) > 0 {
		env[contentLenKey] = strconv.Itoa(len(req.Body))
	}

	scheme, host, port := serverIdentity(req, conv)
	env["URL_SCHEME"] = scheme
	env["SERVER_NAME"] = host
	env["SERVER_PORT"] = port
	if _, ok := env["HTTP_HOST"]; !ok {
		env["HTTP_HOST"] = orDefault(req.Host, defaultHost)
	}
	if req.RemoteAddr != "" {
		addr := req.RemoteAddr
		if h, _, err := net.SplitHostPort(addr); err == nil {
			addr = h
		}
		env["REMOTE_ADDR"] = addr
	}

	return env
}

// environKey canonicalizes a header name: uppercase, dashes to underscores,
// HTTP_ prefix except for the content type and length.
func environKey(name string) string {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	switch key {
	case contentTypeKey, contentLenKey:
		return key
	}
	return "HTTP_" + key
}

func serverIdentity(req *Request, conv Convention) (scheme, host, port string) {
	hostport := req.Host
	switch conv {
	case ConventionEvent:
		scheme = orDefault(req.header("X-Forwarded-Proto"), orDefault(req.Scheme, "https"))
		hostport = orDefault(req.header("Host"), hostport)
		port = req.header("X-Forwarded-Port")
	default:
		scheme = orDefault(req.Scheme, "http")
	}

	host = orDefault(hostport, defaultHost)
	if h, p, err := net.SplitHostPort(hostport); err == nil {
		host = h
		if port == "" {
			port = p
		}
	}
	if port == "" {
		port = "80"
		if scheme == "https" {
			port = "443"
		}
	}
	return scheme, host, port
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
