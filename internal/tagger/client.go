package tagger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultModel     = openai.ChatModelGPT4oMini
	defaultMaxTokens = 300
)

// Client asks an OpenAI chat model to tag quotes.
type Client struct {
	api         openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

// ClientConfig holds configuration for the OpenAI client.
type ClientConfig struct {
	APIKey      string
	BaseURL     string // Optional: OpenAI-compatible endpoint
	Model       string
	MaxTokens   int
	Temperature float64
	MaxRetries  int
	Timeout     time.Duration
}

// NewClient creates a new OpenAI client.
func NewClient(cfg ClientConfig) *Client {
	model := cfg.Model
	if model == "" {
		model = string(defaultModel)
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		api:         openai.NewClient(opts...),
		model:       model,
		maxTokens:   int64(maxTokens),
		temperature: cfg.Temperature,
	}
}

// Model returns the chat model used for tagging.
func (c *Client) Model() string {
	return c.model
}

// Complete sends a single user message and returns the trimmed reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// AnalyzeQuote returns the model's comma-separated categories for quote.
func (c *Client) AnalyzeQuote(ctx context.Context, quote string) (string, error) {
	return c.Complete(ctx, fmt.Sprintf(AnalysisPrompt, quote))
}
