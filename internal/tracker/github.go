// Package tracker files support tickets against a GitHub repository's
// issue tracker.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the HTTP timeout for issue creation requests.
const DefaultTimeout = 30 * time.Second

// defaultBaseURL is the GitHub REST API root.
const defaultBaseURL = "https://api.github.com"

// ErrMissingCredentials indicates the token or repository is not
// configured. It is detected before any network call is made.
var ErrMissingCredentials = errors.New("github token or repository not configured")

// Config holds the credentials and endpoint for the issue tracker.
type Config struct {
	// Token is the GitHub access token used for authentication.
	Token string
	// Repo is the "owner/name" repository identifier.
	Repo string
	// BaseURL overrides the GitHub API root. Empty means api.github.com.
	BaseURL string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Client creates issues in the configured repository.
type Client struct {
	config Config
	http   *http.Client
}

// New creates a tracker client. Credentials are not validated here; a
// missing token or repo surfaces as ErrMissingCredentials on use.
func New(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

// issueRequest is the JSON body of the create-issue call.
type issueRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// issueResponse carries the only response field we use.
type issueResponse struct {
	HTMLURL string `json:"html_url"`
}

// CreateIssue files an issue and returns the URL of the created ticket.
// When credentials are missing it fails locally without contacting the
// service.
func (c *Client) CreateIssue(ctx context.Context, title, body string) (string, error) {
	if c.config.Token == "" || c.config.Repo == "" {
		return "", ErrMissingCredentials
	}

	payload, err := json.Marshal(issueRequest{Title: title, Body: body})
	if err != nil {
		return "", fmt.Errorf("failed to encode issue payload: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/issues", c.config.BaseURL, c.config.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.config.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach issue tracker: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("issue tracker returned status %d: %s", resp.StatusCode, respBody)
	}

	var issue issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return "", fmt.Errorf("failed to decode issue response: %w", err)
	}
	return issue.HTMLURL, nil
}
