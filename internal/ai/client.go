package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingAPIKey means no credential was configured. This is a setup
	// problem, not a transient failure, so callers surface instructions
	// rather than a retry hint.
	ErrMissingAPIKey = errors.New("assistant API key is not configured")

	// ErrEmptyCompletion means the API answered successfully but returned
	// no choices.
	ErrEmptyCompletion = errors.New("completion response contained no choices")
)

// Message is one entry of the chat transcript sent to the API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the capability the assistant service depends on. The HTTP
// client implements it; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// ClientConfig configures the chat-completion client.
type ClientConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Logger      *logrus.Logger
}

// Client calls an OpenAI-compatible chat-completion endpoint. One request
// per call, no retries, no timeout beyond what the context carries.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	logger      *logrus.Logger
}

// NewClient creates a chat-completion client. The client is constructed
// once at startup and injected into whatever needs it.
func NewClient(config ClientConfig) *Client {
	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		httpClient:  &http.Client{},
		baseURL:     config.BaseURL,
		apiKey:      config.APIKey,
		model:       config.Model,
		temperature: config.Temperature,
		logger:      logger,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the messages and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"model":  c.model,
		}).Error("Chat completion request failed")
		return "", fmt.Errorf("completion request failed: HTTP %d: %s", resp.StatusCode, truncate(respBody, 500))
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion request failed: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	fields := logrus.Fields{
		"model":       c.model,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if parsed.Usage != nil {
		fields["prompt_tokens"] = parsed.Usage.PromptTokens
		fields["completion_tokens"] = parsed.Usage.CompletionTokens
	}
	c.logger.WithFields(fields).Info("Chat completion succeeded")

	return parsed.Choices[0].Message.Content, nil
}

func truncate(b []byte, maxLen int) string {
	s := string(b)
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
