// Package strapi is the client for the record store holding the
// salon's transactional records. Responses wrap the payload in a
// "data" envelope which the client unwraps transparently.
package strapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// StatusError is a non-2xx answer from the record store.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("record store: GET %s returned %d", e.Path, e.StatusCode)
}

// Get fetches path with the given query and decodes the unwrapped
// "data" payload into out.
func (c *Client) Get(ctx context.Context, path string, query *Query, out interface{}) error {
	url := c.baseURL + path
	if query != nil {
		if encoded := query.Encode(); encoded != "" {
			url += "?" + encoded
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("record store: build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("record store: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Path: path}
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("record store: decode %s: %w", path, err)
	}

	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("record store: decode %s payload: %w", path, err)
	}
	return nil
}
