package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smartShopper/domain"
	"smartShopper/pkg/logger"
)

type OpenAIConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

// OpenAIClient asks a chat-completion model for candidate products matching a
// free-text shopping query. The model output is treated as untrusted: parsing
// is tolerant and malformed entries are left for the search filter to drop.
type OpenAIClient struct {
	config     OpenAIConfig
	httpClient *http.Client
}

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const systemPrompt = "You are a shopping assistant that suggests real, currently sold products."

const promptTemplate = `Suggest up to 10 real products matching this shopping query: %q.
Respond with ONLY a JSON array, no explanation or markdown. Each element must have:
"name", "price" (number), "brand", "category", "rating" (0-5 number),
"review_count" (integer), "source_platform", "image_url", "product_url",
"description", "features" (string array), "specifications" (object).`

func (c *OpenAIClient) FindCandidates(ctx context.Context, query string) ([]domain.Candidate, error) {
	content, err := c.chat(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(promptTemplate, query)},
	})
	if err != nil {
		return nil, err
	}

	candidates, err := parseCandidates(content)
	if err != nil {
		logger.Warn("failed to parse discovery response", "query", query, "error", err.Error())
		return nil, fmt.Errorf("parse discovery response: %w", err)
	}

	return candidates, nil
}

// parseCandidates tries a strict parse first, then falls back to extracting
// the first balanced JSON array from the surrounding text.
func parseCandidates(content string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	if err := json.Unmarshal([]byte(content), &candidates); err == nil {
		return candidates, nil
	}

	extracted, err := extractJSONArray(content)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(extracted), &candidates); err != nil {
		return nil, fmt.Errorf("unmarshal extracted array: %w", err)
	}

	return candidates, nil
}

func (c *OpenAIClient) chat(ctx context.Context, messages []chatMessage) (string, error) {
	reqBody := chatRequest{
		Model:    c.config.Model,
		Messages: messages,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("discovery request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("discovery api error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse discovery response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from model")
	}

	return chatResp.Choices[0].Message.Content, nil
}
