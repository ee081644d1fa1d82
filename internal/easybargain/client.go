package easybargain

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the EasyBargain conversion API. A submitted job is
// identified by a task id; the job becomes downloadable once the provider
// reports it ready.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type submitResponse struct {
	Result struct {
		TaskID string `json:"task_id"`
	} `json:"result"`
}

type pollResponse struct {
	Result struct {
		Ready    bool   `json:"ready"`
		Download string `json:"download"`
		Filename string `json:"filename"`
	} `json:"result"`
}

// DownloadStatus is the provider's view of a submitted job. Download and
// Filename are only populated once Ready is true.
type DownloadStatus struct {
	Ready    bool
	Download string
	Filename string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Info fetches provider metadata for a source URL and returns the raw JSON
// untouched so the caller can proxy it verbatim.
func (c *Client) Info(rawURL string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("url", rawURL)

	endpoint := strings.TrimSuffix(c.baseURL, "/") + "/info/?" + params.Encode()
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get info: status %d, body: %s", resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}

// Submit places a conversion job for url/source and returns the provider's
// task id.
func (c *Client) Submit(rawURL, source string) (string, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("url", rawURL)
	params.Set("source", source)

	endpoint := strings.TrimSuffix(c.baseURL, "/") + "/order/?" + params.Encode()
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to submit order: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result submitResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if result.Result.TaskID == "" {
		return "", fmt.Errorf("task_id is empty in response, body: %s", string(body))
	}

	return result.Result.TaskID, nil
}

// Poll asks the provider whether the job behind taskID is ready for download.
func (c *Client) Poll(taskID string) (*DownloadStatus, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("task_id", taskID)

	endpoint := strings.TrimSuffix(c.baseURL, "/") + "/download/?" + params.Encode()
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to poll task: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result pollResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return &DownloadStatus{
		Ready:    result.Result.Ready,
		Download: result.Result.Download,
		Filename: result.Result.Filename,
	}, nil
}

// DownloadFile retrieves the finished artifact from the provider-supplied
// location and returns its raw bytes.
func (c *Client) DownloadFile(downloadURL string) ([]byte, error) {
	resp, err := c.httpClient.Get(downloadURL)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to download file: status %d, body: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
