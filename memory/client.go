package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var errNotObject = errors.New("expected a JSON object")

// Client talks to one memory endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient validates endpoint and returns a client for it.
// A nil httpClient means http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid memory endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid memory endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid memory endpoint %q: missing host", endpoint)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}, nil
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch reads the whole memory map.
//
// Errors are *NetworkError when the store cannot be reached and
// *DecodeError when the body is not a JSON object. The HTTP status is not
// checked separately: a body that decodes is returned whatever the status.
func (c *Client) Fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "fetch", Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "fetch", Endpoint: c.endpoint, Err: err}
	}

	snap, err := decodeSnapshot(body)
	if err != nil {
		return nil, &DecodeError{Endpoint: c.endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	return snap, nil
}

// Store writes one key. It returns true only when the store answers 200;
// any other status is a plain false. Only transport failures are errors.
func (c *Client) Store(ctx context.Context, key, value string) (bool, error) {
	payload, err := json.Marshal(map[string]string{key: value})
	if err != nil {
		return false, fmt.Errorf("failed to encode memory entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to build memory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &NetworkError{Op: "store", Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK, nil
}
