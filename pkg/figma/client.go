// Package figma discovers design-system components from a Figma file via the
// Figma REST API, reading the published component maps and, as a fallback,
// walking the document tree.
package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

const apiBase = "https://api.figma.com/v1"

// Client is a Figma API client scoped to the single shallow file request the
// scanner needs. Exactly one attempt is made per request.
type Client struct {
	// BaseURL may be overridden for testing; defaults to the public API.
	BaseURL string

	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Figma API client with the provided personal access
// token. A nil httpClient gets a default with connection pooling and a
// timeout sized for large files.
func NewClient(accessToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{
		BaseURL:     apiBase,
		accessToken: accessToken,
		httpClient:  httpClient,
	}
}

// Match patterns like:
// https://www.figma.com/file/ABC123/Design-Name
// https://www.figma.com/design/ABC123/Design-Name
// Anchored to ensure the entire URL matches the expected pattern.
var fileKeyPattern = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$|\?)`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Both /file/ and /design/ URL shapes are accepted.
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyPattern.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a figma.com URL with a /file/ or /design/ path")
	}
	return matches[1], nil
}

// GetFile retrieves file metadata at shallow depth. Depth 4 reaches pages,
// frames and the components nested directly inside them without pulling the
// entire document, which for large files can run to hundreds of megabytes.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	url := fmt.Sprintf("%s/files/%s?depth=4", c.BaseURL, fileKey)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("figma API status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return &fileResp, nil
}
