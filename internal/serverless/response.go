package serverless

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// ErrBadStatus is returned when the application emits a status line without a leading code
var ErrBadStatus = errors.New("malformed status line")

// Response is the platform response descriptor
type Response struct {
	StatusCode        int                 `json:"statusCode"`
	Headers           map[string]string   `json:"headers"`
	MultiValueHeaders map[string][]string `json:"multiValueHeaders,omitempty"`
	Body              string              `json:"body"`
}

// ParseStatus returns the leading integer of a "<code> <reason>" status line
func ParseStatus(status string) (int, error) {
	fields := strings.Fields(status)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadStatus, status)
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil || code < 100 || code > 999 {
		return 0, fmt.Errorf("%w: %q", ErrBadStatus, status)
	}
	return code, nil
}

func newResponse(status string, headers []Header, chunks [][]byte) (*Response, error) {
	code, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode:        code,
		Headers:           make(map[string]string, len(headers)),
		MultiValueHeaders: make(map[string][]string, len(headers)),
	}
	for _, h := range headers {
		resp.Headers[h.Name] = h.Value
		resp.MultiValueHeaders[h.Name] = append(resp.MultiValueHeaders[h.Name], h.Value)
	}

	var body bytes.Buffer
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		body.Write(chunk)
	}
	resp.Body = body.String()

	return resp, nil
}

// ToEvent encodes the response for the structured event convention.
// Bodies that are not valid UTF-8 are base64 encoded.
func (r *Response) ToEvent() events.APIGatewayProxyResponse {
	out := events.APIGatewayProxyResponse{
		StatusCode:        r.StatusCode,
		Headers:           r.Headers,
		MultiValueHeaders: r.MultiValueHeaders,
		Body:              r.Body,
	}
	if !utf8.ValidString(r.Body) {
		out.Body = base64.StdEncoding.EncodeToString([]byte(r.Body))
		out.IsBase64Encoded = true
	}
	return out
}

// Write encodes the response onto a socket-style response writer
func (r *Response) Write(w http.ResponseWriter) error {
	header := w.Header()
	if len(r.MultiValueHeaders) > 0 {
		for name, values := range r.MultiValueHeaders {
			for _, v := range values {
				header.Add(name, v)
			}
		}
	} else {
		for name, v := range r.Headers {
			header.Set(name, v)
		}
	}
	w.WriteHeader(r.StatusCode)
	_, err := w.Write([]byte(r.Body))
	return err
}
