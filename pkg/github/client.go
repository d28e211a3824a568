// Package github discovers design-system components from a GitHub repository
// by scanning its recursive file tree for recognizable component source files.
package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const apiBase = "https://api.github.com"

// Client is a minimal GitHub REST client covering the two requests the
// scanner needs: repository metadata (for the default branch) and the
// recursive git tree. Exactly one attempt is made per request.
type Client struct {
	// BaseURL may be overridden for testing; defaults to the public API.
	BaseURL string

	token      string
	httpClient *http.Client
}

// NewClient creates a GitHub API client. The token is optional; when set it
// is sent as a bearer token, raising the rate limit and allowing private
// repositories. A nil httpClient gets a default with sane timeouts.
func NewClient(token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{
		BaseURL:    apiBase,
		token:      token,
		httpClient: httpClient,
	}
}

// repoInfo is the slice of the repository metadata payload this package reads.
type repoInfo struct {
	DefaultBranch string `json:"default_branch"`
}

// TreeEntry is one path in a repository's git tree.
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"` // "blob" or "tree"
	Size int64  `json:"size"`
}

// treeResponse is the slice of the git tree payload this package reads.
type treeResponse struct {
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

var repoURLPattern = regexp.MustCompile(`github\.com[/:]([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+?)(?:\.git)?(?:[/?#]|$)`)

// ParseRepoURL extracts the owner and repository name from a GitHub URL.
// Returns ok=false when the URL carries no parseable owner/repo path, which
// lets the caller skip the strategy without any network traffic.
func ParseRepoURL(rawURL string) (owner, repo string, ok bool) {
	matches := repoURLPattern.FindStringSubmatch(rawURL)
	if len(matches) < 3 {
		return "", "", false
	}
	return matches[1], matches[2], true
}

// DefaultBranch resolves the repository's default branch via one metadata
// request.
func (c *Client) DefaultBranch(owner, repo string) (string, error) {
	var info repoInfo
	url := fmt.Sprintf("%s/repos/%s/%s", c.BaseURL, owner, repo)
	if err := c.get(url, &info); err != nil {
		return "", err
	}
	if info.DefaultBranch == "" {
		return "", fmt.Errorf("repository %s/%s has no default branch", owner, repo)
	}
	return info.DefaultBranch, nil
}

// Tree fetches the entire recursive file tree of a branch in one request,
// avoiding per-directory round trips. Trees too large for a single response
// arrive truncated and are processed as-is.
func (c *Client) Tree(owner, repo, branch string) ([]TreeEntry, error) {
	var tree treeResponse
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1", c.BaseURL, owner, repo, branch)
	if err := c.get(url, &tree); err != nil {
		return nil, err
	}
	return tree.Tree, nil
}

func (c *Client) get(url string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("github API status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
