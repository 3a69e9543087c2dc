package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"sathorn/internal/config"
	"sathorn/internal/metrics"
	"sathorn/internal/model"
)

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	logger      *logrus.Logger
}

// NewOpenAIClient creates a client for cfg. A placeholder key is accepted here
// and rejected by the provider on the first call.
func NewOpenAIClient(cfg *config.OpenAIConfig, logger *logrus.Logger) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.ResolvedAPIKey())
	if cfg.APIBase != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.APIBase, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout()}

	if !cfg.HasAPIKey() {
		logger.Warn("No OpenAI API key configured, AI search requests will fail upstream")
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.ChatModel,
		temperature: cfg.ChatTemperature,
		maxTokens:   cfg.ChatMaxTokens,
		logger:      logger,
	}
}

// Complete performs a single non-streaming chat completion in JSON-object mode
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(c.model, errorStatus(err)).Observe(duration.Seconds())
		return "", parseAPIError(err)
	}
	metrics.UpstreamRequestDuration.WithLabelValues(c.model, "200").Observe(duration.Seconds())

	c.logger.WithFields(logrus.Fields{
		"model":             c.model,
		"duration_ms":       duration.Milliseconds(),
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Debug("Chat completion finished")

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response: %w", model.ErrUpstream)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty chat completion content: %w", model.ErrUpstream)
	}
	return content, nil
}

// parseAPIError extracts a human-readable error from the API response.
// Every error is wrapped with model.ErrUpstream.
func parseAPIError(err error) error {
	wrap := model.ErrUpstream

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("chat API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractDetail(reqErr.Body); detail != "" {
			return fmt.Errorf("chat API error %d: %s: %w", reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("chat API error %d: %s: %w", reqErr.HTTPStatusCode, strings.TrimSpace(string(reqErr.Body)), wrap)
	}

	return fmt.Errorf("chat request failed: %v: %w", err, wrap)
}

// extractDetail reads a "detail" field, used by some OpenAI-compatible gateways
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}

func errorStatus(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return strconv.Itoa(reqErr.HTTPStatusCode)
	}
	return "error"
}
