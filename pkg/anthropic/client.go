package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the Anthropic Messages API client. A zero request timeout is
// replaced with the package default so a hung remote call can never stall
// the caller indefinitely.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new Anthropic API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the API base URL. Used by tests.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetModel overrides the default model.
func (c *Client) SetModel(model string) {
	if model != "" {
		c.model = model
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// Model returns the model the client sends requests for.
func (c *Client) Model() string {
	return c.model
}

// CreateMessage sends a message creation request to the Anthropic API.
// An empty req.Model falls back to the client's configured model.
func (c *Client) CreateMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.apiURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build message request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call anthropic API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("anthropic API error %d (%s): %s", resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("anthropic API error %d: %s", resp.StatusCode, string(raw))
	}

	var result MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode anthropic response: %w", err)
	}

	return &result, nil
}
