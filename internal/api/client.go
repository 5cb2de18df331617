package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/altinukshini/glgrep/internal/config"
)

// Client talks to one GitLab instance's REST API (v4). Safe for concurrent
// use; the underlying http.Client pools connections.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// StatusError is a non-2xx API response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("gitlab api: HTTP %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("gitlab api: HTTP %d", e.Code)
}

func NewClient(inst config.Instance) (*Client, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimSuffix(inst.URL, "/"),
		token:   inst.Token,
	}, nil
}

// get issues a GET against /api/v4/<path> and decodes the JSON response into
// result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	u := c.baseURL + "/api/v4/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
