// Package llm wraps the hosted text-generation API used to draft plans.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/goalplan/engine/pkg/logger"
)

// Completer turns a prompt into the model's raw text answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelInfo describes one model offered by the API.
type ModelInfo struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
}

// AnthropicConfig configures AnthropicClient.
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	// Options are appended to the SDK client options (base URL overrides in tests).
	Options []option.RequestOption
}

// AnthropicClient calls the Anthropic Messages API. It never retries; the
// SDK's own retry layer is disabled.
type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *zap.Logger
}

// NewAnthropicClient builds a client. The API key is required.
func NewAnthropicClient(cfg AnthropicConfig, log *zap.Logger) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("anthropic model is required")
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if log == nil {
		log = logger.L()
	}

	opts := append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}, cfg.Options...)

	return &AnthropicClient{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		log:       log,
	}, nil
}

// Model returns the configured model id.
func (c *AnthropicClient) Model() string { return c.model }

// Complete sends prompt as a single user message and concatenates the text blocks of the reply.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	c.log.Debug("model call completed",
		zap.String("model", c.model),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
		zap.String("stop_reason", string(resp.StopReason)),
		zap.Duration("duration", time.Since(start)),
	)
	return text.String(), nil
}

// ListModels returns every model the credential can use for message generation.
func (c *AnthropicClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var out []ModelInfo
	iter := c.client.Models.ListAutoPaging(ctx, anthropic.ModelListParams{})
	for iter.Next() {
		m := iter.Current()
		out = append(out, ModelInfo{ID: m.ID, DisplayName: m.DisplayName, CreatedAt: m.CreatedAt})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return out, nil
}
