package shopdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pobyzaarif/goshortcute"

	"smartShopper/domain"
)

type Config struct {
	BaseURL           string
	BasicAuthUsername string
	BasicAuthPassword string
}

// Client fetches candidates from a real-time shopping data feed. The feed
// already returns structured JSON, so unlike the generative source no tolerant
// extraction is needed here.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type feedResponse struct {
	Products []domain.Candidate `json:"products"`
}

func (c *Client) FindCandidates(ctx context.Context, query string) ([]domain.Candidate, error) {
	endpoint := fmt.Sprintf("%s/v1/products/search?q=%s", c.config.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	buildBasicAuth := goshortcute.StringtoBase64Encode(c.config.BasicAuthUsername + ":" + c.config.BasicAuthPassword)
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Basic "+buildBasicAuth)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopping feed request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopping feed error (status %d): %s", res.StatusCode, string(body))
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed response: %w", err)
	}

	return feed.Products, nil
}
