package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sufield/remote-access/pkg/envelope"
)

const (
	// DefaultTimeout bounds a whole request when no http.Client is supplied.
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 1 << 20

	echoPath   = "/api/echo"
	healthPath = "/healthz"
)

// StatusError is returned for non-2xx answers.
type StatusError struct {
	StatusCode int
	// Envelope is the decoded body; zero when the body was not an envelope.
	Envelope envelope.ResponseData
	Body     string
}

func (e *StatusError) Error() string {
	msg := e.Envelope.Message
	if msg == "" {
		msg = strings.TrimSpace(e.Body)
	}
	if msg == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, msg)
}

// Client talks to one Remote Access service instance.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	newID   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithIDGenerator replaces the generator used for empty envelope ids.
func WithIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: host is required", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		baseURL: u,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: DefaultTimeout,
		},
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Welcome fetches the greeting served at the root path.
func (c *Client) Welcome(ctx context.Context) (string, error) {
	return c.getText(ctx, "/")
}

// Health calls the health endpoint and fails unless the service answers 2xx.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.getText(ctx, healthPath)
	return err
}

// Send posts req to the echo route. An empty ID is filled in first; the id
// actually sent is returned inside the response data.
func (c *Client) Send(ctx context.Context, req envelope.RequestData) (envelope.ResponseData, error) {
	if req.ID == "" {
		req.ID = c.newID()
	}
	if req.Payload == nil {
		req.Payload = json.RawMessage("null")
	}
	if err := req.Validate(); err != nil {
		return envelope.ResponseData{}, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return envelope.ResponseData{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(echoPath), bytes.NewReader(body))
	if err != nil {
		return envelope.ResponseData{}, fmt.Errorf("failed to create POST request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	status, raw, err := c.do(httpReq)
	if err != nil {
		return envelope.ResponseData{}, err
	}

	var resp envelope.ResponseData
	decodeErr := json.Unmarshal(raw, &resp)
	if status < 200 || status > 299 {
		serr := &StatusError{StatusCode: status, Body: string(raw)}
		if decodeErr == nil {
			serr.Envelope = resp
		}
		return envelope.ResponseData{}, serr
	}
	if decodeErr != nil {
		return envelope.ResponseData{}, fmt.Errorf("decode response: %w", decodeErr)
	}
	return resp, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *Client) getText(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create GET request: %w", err)
	}

	status, raw, err := c.do(req)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		serr := &StatusError{StatusCode: status, Body: string(raw)}
		var resp envelope.ResponseData
		if json.Unmarshal(raw, &resp) == nil {
			serr.Envelope = resp
		}
		return "", serr
	}
	return string(raw), nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	return u.String()
}
