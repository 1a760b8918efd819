package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultAPIURL = "https://api.github.com"

// Client provides access to the GitHub REST API.
type Client struct {
	token   string
	apiURL  string
	httpCli *http.Client
}

// NewClient creates a new GitHub client. Requires GITHUB_TOKEN env var.
func NewClient() (*Client, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}

	apiURL := os.Getenv("GITHUB_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	apiURL = strings.TrimRight(apiURL, "/")

	return &Client{
		token:   token,
		apiURL:  apiURL,
		httpCli: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// AuthError indicates the API rejected the supplied credentials.
type AuthError struct {
	message string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.message
}

// IsAuthError checks if an error is, or wraps, an authentication error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

type createRepoRequest struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

type createRepoResponse struct {
	HTMLURL string `json:"html_url"`
}

// CreateRepository creates a new repository owned by the authenticated user
// and returns its canonical HTML URL.
func (c *Client) CreateRepository(ctx context.Context, name string, private bool) (string, error) {
	payload, err := json.Marshal(createRepoRequest{Name: name, Private: private})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	body, err := c.do(ctx, "POST", c.apiURL+"/user/repos", payload, http.StatusCreated)
	if err != nil {
		return "", fmt.Errorf("creating repository %s: %w", name, err)
	}

	var result createRepoResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	return result.HTMLURL, nil
}

type createFileRequest struct {
	Message  string `json:"message"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// CreateFile creates or updates a file in a repository via the contents API.
// Content must already be base64-encoded.
func (c *Client) CreateFile(ctx context.Context, owner, repo, path, content, message string) error {
	payload, err := json.Marshal(createFileRequest{
		Message:  message,
		Content:  content,
		Encoding: "base64",
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.apiURL, owner, repo, escapePath(path))
	if _, err := c.do(ctx, "PUT", endpoint, payload, http.StatusCreated, http.StatusOK); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	return nil
}

type userResponse struct {
	Login string `json:"login"`
}

// AuthenticatedUser returns the login of the authenticated user.
func (c *Client) AuthenticatedUser(ctx context.Context) (string, error) {
	body, err := c.do(ctx, "GET", c.apiURL+"/user", nil, http.StatusOK)
	if err != nil {
		return "", fmt.Errorf("fetching authenticated user: %w", err)
	}

	var result userResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	return result.Login, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, okStatuses ...int) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		return nil, &AuthError{message: string(body)}
	}
	for _, status := range okStatuses {
		if resp.StatusCode == status {
			return body, nil
		}
	}
	return nil, fmt.Errorf("GitHub API error (status %d): %s", resp.StatusCode, string(body))
}

// escapePath escapes each path segment while preserving the slashes that
// separate them, as the contents API expects.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
