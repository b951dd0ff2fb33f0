package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultGroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	DefaultGroqModel = "mixtral-8x7b-32768"

	systemPrompt = "You are a movie-booking assistant. Answer directly and only. " +
		"Do NOT ask clarifying questions. Provide JSON for lists when asked."

	maxCompletionTokens = 400
)

// Assistant answers a freeform chat prompt.
type Assistant interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// UpstreamError is returned when the assistant API responds with a non-2xx
// status. The handler passes status and body through to the client.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("assistant api error: status %d: %s", e.StatusCode, e.Body)
}

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewGroqClient creates a Groq client. Empty apiURL and model fall back to
// the defaults; a nil httpClient gets a 15 second timeout.
func NewGroqClient(apiKey, apiURL, model string, httpClient *http.Client) *GroqClient {
	if apiURL == "" {
		apiURL = DefaultGroqURL
	}
	if model == "" {
		model = DefaultGroqModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &GroqClient{
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *GroqClient) Ask(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.0,
		MaxTokens:   maxCompletionTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant api request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		// Unexpected but non-error shape from the upstream: hand the raw
		// payload back rather than inventing an answer.
		return string(respBody), nil
	}

	return completion.Choices[0].Message.Content, nil
}
