package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nem2/internal/domain"
	"nem2/internal/dto"
	"nem2/internal/wire"
)

// RequestIDHeader is the header each request is tagged with.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for diagnostics.
const maxErrorBody = 64 << 10

// HTTP reaches a node's REST API at Base with the HTTP client, logging each
// request on Log. The zero Log discards output.
type HTTP struct {
	Base string
	HTTP *http.Client
	Log  zerolog.Logger
}

// NewHTTP returns a transport for the node at base. A zero timeout leaves
// deadlines to the caller's context.
func NewHTTP(base string, timeout time.Duration, log zerolog.Logger) *HTTP {
	return &HTTP{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: timeout},
		Log:  log,
	}
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	// Code and Message come from the node's {"code", "message"} error body.
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Code != "" || e.Message != "" {
		return fmt.Sprintf("%s %s: %s: %s: %s", e.Method, e.URL, e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// IsNotFound reports whether the node answered 404.
func (e *StatusError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// Do sends body (nil for none) to path and returns the decoded response body,
// or nil when the node sent none.
func (c *HTTP) Do(ctx context.Context, method, path string, body wire.Value) (wire.Value, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, u, err)
	}
	defer resp.Body.Close()

	c.Log.Debug().
		Str("request_id", id).
		Str("method", method).
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("node request")

	if resp.StatusCode/100 != 2 {
		return nil, statusError(method, u, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, u, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	v, err := dto.DecodeJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, u, err)
	}
	return v, nil
}

func statusError(method, u string, resp *http.Response) error {
	e := &StatusError{Method: method, URL: u, StatusCode: resp.StatusCode, Status: resp.Status}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return e
	}
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		e.Code, e.Message = body.Code, body.Message
	}
	return e
}

var _ domain.Transport = (*HTTP)(nil)
