package dropbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	previewMarker  = "?dl=0"
	downloadMarker = "?dl=1"
)

// Client re-hosts artifacts on Dropbox. Uploads go to the content host,
// sharing calls to the API host; both carry the same bearer token.
type Client struct {
	contentBaseURL string
	apiBaseURL     string
	token          string
	httpClient     *http.Client
}

type uploadArg struct {
	Path       string `json:"path"`
	Mode       string `json:"mode"`
	Autorename bool   `json:"autorename"`
}

type uploadResponse struct {
	PathLower string `json:"path_lower"`
}

type sharedLinkRequest struct {
	Path string `json:"path"`
}

type sharedLinkResponse struct {
	URL string `json:"url"`
}

func NewClient(contentBaseURL, apiBaseURL, token string) *Client {
	return &Client{
		contentBaseURL: contentBaseURL,
		apiBaseURL:     apiBaseURL,
		token:          token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload stores data under /{filename} and returns the lowercased path
// Dropbox assigned. Autorename is on, so a path collision yields a fresh
// name instead of an error.
func (c *Client) Upload(filename string, data []byte) (string, error) {
	arg, err := json.Marshal(uploadArg{
		Path:       "/" + filename,
		Mode:       "add",
		Autorename: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal upload arg: %w", err)
	}

	endpoint := strings.TrimSuffix(c.contentBaseURL, "/") + "/2/files/upload"
	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Dropbox-API-Arg", string(arg))
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to upload file: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result uploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if result.PathLower == "" {
		return "", fmt.Errorf("path_lower is empty in response, body: %s", string(body))
	}

	return result.PathLower, nil
}

// CreateSharedLink creates a shared link for an uploaded path. The returned
// URL points at Dropbox's preview page.
func (c *Client) CreateSharedLink(path string) (string, error) {
	jsonData, err := json.Marshal(sharedLinkRequest{Path: path})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.apiBaseURL, "/") + "/2/sharing/create_shared_link_with_settings"
	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to create shared link: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result sharedLinkResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if result.URL == "" {
		return "", fmt.Errorf("url is empty in response, body: %s", string(body))
	}

	return result.URL, nil
}

// Relay uploads the artifact bytes and returns a direct-download share link.
// If the sharing call fails the already-uploaded file is left in place; there
// is no cleanup step.
func (c *Client) Relay(data []byte, filename string) (string, error) {
	pathLower, err := c.Upload(filename, data)
	if err != nil {
		return "", err
	}

	sharedURL, err := c.CreateSharedLink(pathLower)
	if err != nil {
		return "", err
	}

	return DirectLink(sharedURL), nil
}

// DirectLink rewrites a shared link so fetching it streams the file instead
// of rendering the preview page. Exactly one marker is replaced; links
// without the marker pass through unchanged.
func DirectLink(sharedURL string) string {
	return strings.Replace(sharedURL, previewMarker, downloadMarker, 1)
}
