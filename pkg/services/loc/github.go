package loc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

const DefaultAPIBase = "https://api.github.com"

var (
	// ErrRateLimited indicates the GitHub API quota is exhausted
	ErrRateLimited = errors.New("github api rate limit exceeded")
	// ErrNotFound indicates the requested path does not exist in the repository
	ErrNotFound = errors.New("path not found")
	// ErrForbidden indicates the token lacks permission for the requested path
	ErrForbidden = errors.New("access denied; check token permissions")
)

// Entry is a single item returned by the GitHub contents API
type Entry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"` // "file" or "dir"
	Size        int64  `json:"size"`
	Encoding    string `json:"encoding"`
	Content     string `json:"content"`
	DownloadURL string `json:"download_url"`
}

// Client is a GitHub contents API client with retries on transient failures
type Client struct {
	base  string
	token string
	http  *retryablehttp.Client
}

func NewClient(base, token string) *Client {
	if base == "" {
		base = DefaultAPIBase
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	return &Client{
		base:  strings.TrimSuffix(base, "/"),
		token: token,
		http:  rc,
	}
}

// ListContents returns the entries of a directory within the repository.
// The repository root is addressed with an empty path.
func (c *Client) ListContents(ctx context.Context, owner, repo, path string) ([]Entry, error) {
	body, err := c.get(ctx, owner, repo, path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode contents of %q: %w", path, err)
	}
	return entries, nil
}

// GetFile fetches a single file and returns its decoded content
func (c *Client) GetFile(ctx context.Context, owner, repo, path string) ([]byte, error) {
	body, err := c.get(ctx, owner, repo, path)
	if err != nil {
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode file %q: %w", path, err)
	}

	// GitHub wraps base64 payloads with newlines.
	raw := strings.ReplaceAll(entry.Content, "\n", "")
	content, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content of %q: %w", path, err)
	}
	return content, nil
}

func (c *Client) get(ctx context.Context, owner, repo, path string) ([]byte, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.base, owner, repo, path)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(string(body)), "rate limit") {
			return nil, ErrRateLimited
		}
		return nil, fmt.Errorf("%q: %w", path, ErrForbidden)
	default:
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}
}
