package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Logger receives request traces. *output.UI satisfies it.
type Logger interface {
	VerboseLog(format string, a ...any)
}

type nopLogger struct{}

func (nopLogger) VerboseLog(string, ...any) {}

// Options describes a single request. The zero value is a GET with a JSON
// content type.
type Options struct {
	Method string
	Header http.Header
	Body   io.Reader
}

// HTTPError is returned by RequestJSON when the backend answers with a
// non-2xx status. The body is never parsed in that case.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.StatusText)
}

// NetworkError wraps a transport-level failure: the request never produced
// a response.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsHTTPError reports whether err is (or wraps) an *HTTPError.
func IsHTTPError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}

// Client talks to one backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The default has no
// timeout, matching the single-attempt contract.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger routes request traces to l.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client for the backend at baseURL (e.g. http://localhost:8080).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		log:     nopLogger{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the backend URL requests are resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// RequestJSON performs the request and returns the JSON body. A non-2xx
// status yields *HTTPError. A 2xx body that is empty or not valid JSON is
// reported as an empty object so write-only endpoints can acknowledge with
// no content.
func (c *Client) RequestJSON(ctx context.Context, path string, opts Options) (json.RawMessage, error) {
	resp, err := c.do(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(body), nil
}

// RequestText performs the request and returns the raw body whatever the
// status code. Callers surface the text to the user verbatim.
func (c *Client) RequestText(ctx context.Context, path string, opts Options) (string, error) {
	return c.requestText(ctx, path, opts, false)
}

func (c *Client) requestText(ctx context.Context, path string, opts Options, checkStatus bool) (string, error) {
	resp, err := c.do(ctx, path, opts)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if checkStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &HTTPError{Status: resp.StatusCode, StatusText: statusText(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(body), nil
}

func (c *Client) do(ctx context.Context, path string, opts Options) (*http.Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, opts.Body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.VerboseLog("%s %s", method, url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: url, Err: err}
	}
	c.log.VerboseLog("%s %s -> %d", method, url, resp.StatusCode)
	return resp, nil
}

// statusText extracts the reason phrase from resp.Status ("404 Not Found"),
// falling back to the canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
