package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/hostd/internal/infrastructure/transport"
)

const clientTimeout = 5 * time.Second

// ErrHostUnreachable is returned when no host answers on the configured address.
var ErrHostUnreachable = errors.New("hostd is not running")

// Client talks to a running host over its HTTP control endpoints.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the host listening on addr.
func NewClient(addr string) *Client {
	return &Client{
		base: "http://" + addr,
		http: &http.Client{Timeout: clientTimeout},
	}
}

// Health reports how many windows the host has open.
func (c *Client) Health(ctx context.Context) (int, error) {
	var body struct {
		Windows int `json:"windows"`
	}
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, http.StatusOK, &body); err != nil {
		return 0, err
	}
	return body.Windows, nil
}

// OpenFile asks the host to deliver path to its current window.
func (c *Client) OpenFile(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodPost, "/open", transport.OpenRequest{Path: path}, http.StatusNoContent, nil)
}

// NewWindow asks the host to create a window. A zero parent creates a
// top-level window.
func (c *Client) NewWindow(ctx context.Context, parent uint64) (transport.WindowResponse, error) {
	var in any
	if parent != 0 {
		in = transport.NewWindowRequest{Parent: parent}
	}
	var resp transport.WindowResponse
	err := c.do(ctx, http.MethodPost, "/windows", in, http.StatusCreated, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHostUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
