// Package gateway is the single outbound call path to the e-commerce
// backend. Every request is decorated with the session's bearer credential,
// and an authorization failure tears the session down before the error is
// handed back to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// CredentialFunc yields the session's current bearer credential, or ""
// when the session holds none.
type CredentialFunc func(ctx context.Context) string

// UnauthorizedFunc is invoked when the backend answers 401. It must
// complete before the failing call returns to its caller.
type UnauthorizedFunc func(ctx context.Context)

// Client calls the e-commerce REST backend on behalf of one console
// session.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	credential     CredentialFunc
	onUnauthorized UnauthorizedFunc
	log            zerolog.Logger
}

// ClientOption modifies a Client instance.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCredentialSource sets the session credential lookup.
func WithCredentialSource(fn CredentialFunc) ClientOption {
	return func(c *Client) {
		c.credential = fn
	}
}

// WithUnauthorizedHandler sets the session teardown hook for 401 responses.
func WithUnauthorizedHandler(fn UnauthorizedFunc) ClientOption {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithLogger sets the client's logger.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// UserMessage returns the server-provided message suitable for display.
func (e *APIError) UserMessage() string {
	return e.Message
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), reader)
	if err != nil {
		return errors.Wrap(err, "[Client.do] new request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart uploads a file as a multipart form request. Used by the
// image endpoints, which do not accept JSON bodies.
func (c *Client) doMultipart(ctx context.Context, path string, query url.Values, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return errors.Wrap(err, "[Client.doMultipart] create form file")
	}
	if _, err := io.Copy(part, file); err != nil {
		return errors.Wrap(err, "[Client.doMultipart] copy file")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "[Client.doMultipart] close writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(path, query), &buf)
	if err != nil {
		return errors.Wrap(err, "[Client.doMultipart] new request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.credential != nil {
		if token := c.credential(req.Context()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(req.Method, "error").Inc()
		return errors.Wrap(err, "[Client.send] backend request")
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "[Client.send] read response")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Teardown completes before the caller observes the failure, so
		// any later render sees a consistent logged-out state.
		unauthorizedTotal.Inc()
		if c.onUnauthorized != nil {
			c.onUnauthorized(req.Context())
		}
		return &APIError{StatusCode: resp.StatusCode, Message: messageFrom(raw, "unauthorized")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: messageFrom(raw, http.StatusText(resp.StatusCode))}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrap(err, "[Client.send] decode envelope")
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "[Client.send] decode data")
	}
	return nil
}

func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func messageFrom(raw []byte, fallback string) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return fallback
}
