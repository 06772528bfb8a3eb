package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/utils"
)

const (
	maxNetworkRetries = 2
	initialRetryWait  = 500 * time.Millisecond
	maxBodyBytes      = 8 << 20 // upstreams are small; cap defensively
)

// Client wraps an http.Client with the retry policy shared by all
// adapters: bounded exponential backoff for ErrNetwork only. Shape and
// drift errors indicate a stable mismatch and are returned immediately.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// GetJSON fetches url and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	return c.withRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("%w: build request: %v", ErrNetwork, err)
		}
		req.Header.Set("Accept", "application/json")
		return c.doJSON(req, out)
	})
}

// PostJSON sends body as JSON to url and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrShape, err)
	}
	return c.withRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("%w: build request: %v", ErrNetwork, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return c.doJSON(req, out)
	})
}

// GetHTML fetches url and returns the raw page body.
func (c *Client) GetHTML(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := c.withRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("%w: build request: %v", ErrNetwork, err)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNetwork, err)
		}
		defer utils.Close(resp.Body)
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrNetwork, err)
		}
		return nil
	})
	return body, err
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer utils.Close(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode body: %v", ErrShape, err)
	}
	return nil
}

// withRetry runs fn, retrying only network failures with exponential
// backoff. It respects ctx between attempts.
func (c *Client) withRetry(ctx context.Context, fn func() error) error {
	wait := initialRetryWait
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil || !IsNetwork(err) || attempt >= maxNetworkRetries {
			return err
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrNetwork, ctx.Err())
		case <-time.After(wait):
		}
		wait *= 2
	}
}
