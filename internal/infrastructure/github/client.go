package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/devconnect/devconnect-api/internal/core/domain"
	"github.com/devconnect/devconnect-api/internal/core/ports"
)

const defaultBaseURL = "https://api.github.com"

// Client fetches public repository listings from the GitHub REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client against the public GitHub API. baseURL overrides
// the endpoint (used by tests); empty means the real API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListRepos returns the user's most recently created public repositories.
// An unknown username surfaces as domain.ErrGithubProfileNotFound.
func (c *Client) ListRepos(ctx context.Context, username string, limit int) ([]ports.GithubRepo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc",
		c.baseURL, url.PathEscape(username), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrGithubProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github fetch: unexpected status %d", resp.StatusCode)
	}

	var repos []ports.GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github decode: %w", err)
	}
	return repos, nil
}
