// Package llm re-translates transcript sentences through an
// OpenAI-compatible chat completions endpoint when the backend's own
// translation chain failed.
package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Config holds translator configuration. BaseURL may point at any
// OpenAI-compatible provider (DeepSeek, etc.); empty means api.openai.com.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// OpenAITranslator translates English sentences to Hindi using the chat
// completions API.
type OpenAITranslator struct {
	client *openai.Client
	config Config
}

// NewOpenAITranslator creates a translator.
func NewOpenAITranslator(cfg Config) (*OpenAITranslator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: API key required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(clientCfg),
		config: cfg,
	}, nil
}

// Translate returns an accurate Hindi translation of text.
func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	model := t.config.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildTranslationPrompt(text)},
		},
		Temperature: 0.3,
	}

	start := time.Now()
	resp, err := t.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		log.Printf("llm: translation call failed after %v: %v", duration, err)
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: chat completion: no response choices")
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Printf("llm: translated in %v: %q -> %q", duration, text, result)
	return result, nil
}
