package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/osse101/Homestead_Go/internal/config"
)

// OpenAIConfig configures an OpenAI-compatible chat completions backend
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
	HTTPClient *http.Client
}

type openAIBackend struct {
	client openai.Client
	model  string
}

// NewOpenAIBackend builds a backend that calls the chat completions endpoint
func NewOpenAIBackend(cfg OpenAIConfig) Backend {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &openAIBackend{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (b *openAIBackend) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// NewFromConfig builds the advisor described by the application config.
// Without an API key the advisor answers every query with FallbackMessage.
func NewFromConfig(cfg config.AdvisorConfig) Advisor {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return NewService(nil, cfg.Timeout)
	}
	backend := NewOpenAIBackend(OpenAIConfig{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		MaxRetries: 1,
	})
	return NewService(backend, cfg.Timeout)
}
