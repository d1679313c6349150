// Package ai provides a client for the OpenAI chat completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sips/internal/shared/config"
	"sips/internal/shared/logger"
)

const requestTimeout = 60 * time.Second

// Client calls the chat completions endpoint. All generation requests force
// JSON object output so responses can be schema-validated downstream.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	visionModel string
	httpClient  *http.Client
	logger      logger.Interface
}

func NewClient(cfg config.OpenAIConfig, log logger.Interface) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		visionModel: cfg.VisionModel,
		httpClient:  &http.Client{Timeout: requestTimeout},
		logger:      log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// CompleteJSON sends a text-only prompt and returns the raw JSON content of
// the first choice.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error) {
	messages := []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}
	return c.complete(ctx, c.model, messages)
}

// CompleteJSONWithImage sends a prompt with an attached image (URL or data
// URL) using the vision model.
func (c *Client) CompleteJSONWithImage(ctx context.Context, systemPrompt, userPrompt, image string) (json.RawMessage, error) {
	messages := []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: []contentPart{
			{Type: "text", Text: userPrompt},
			{Type: "image_url", ImageURL: &imageURL{URL: image}},
		}},
	}
	return c.complete(ctx, c.visionModel, messages)
}

func (c *Client) complete(ctx context.Context, model string, messages []chatMessage) (json.RawMessage, error) {
	reqBody := chatRequest{
		Model:          model,
		Messages:       messages,
		ResponseFormat: &responseFormat{Type: "json_object"},
		Temperature:    0.7,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(b),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Errorw("model request failed",
			"status", resp.StatusCode,
			"model", model)
		return nil, fmt.Errorf("model error %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	return json.RawMessage(parsed.Choices[0].Message.Content), nil
}
