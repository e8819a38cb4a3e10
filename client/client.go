// Package client is the directory's browsing side: it fetches the project
// list once and does all searching and tag filtering locally.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"web3dir/models"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the directory API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for baseURL. A nil httpClient gets a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) FetchProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.get(ctx, "/api/projects", &projects); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (c *Client) FetchTags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := c.get(ctx, "/api/tags", &tags); err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// Health returns the decoded health report. An unhealthy server answers 500
// with a report body; that body is returned together with a *StatusError.
// A non-2xx answer without a report yields a nil report and a *StatusError.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	failed := resp.StatusCode < 200 || resp.StatusCode > 299

	var health models.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		// A proxy error page still means something answered.
		if failed {
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	if failed {
		return &health, &StatusError{StatusCode: resp.StatusCode, Message: health.Error}
	}
	return &health, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body models.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &StatusError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
