package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/profilestrap/core"
	"github.com/gaurav-prasanna/profilestrap/core/config"
	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrUnavailable indicates the remote summarizer is not configured.
	ErrUnavailable = errors.New("summarizer not configured")
	// ErrEmptySummary indicates the model returned no usable text.
	ErrEmptySummary = errors.New("empty summary")
)

// ChatClient is the subset of the OpenAI client used for summaries.
// Any OpenAI-compatible backend can satisfy it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

var _ core.Summarizer = (*OpenAI)(nil)

// OpenAI produces summaries with a chat-completion model.
type OpenAI struct {
	Client      ChatClient
	Model       string
	MaxTokens   int
	Temperature float32
	// Budget caps the page content included in the prompt.
	Budget int
}

// NewOpenAI creates an OpenAI summarizer from configuration.
func NewOpenAI(cfg config.OpenAI, budget int) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAI{
		Client:      openai.NewClientWithConfig(clientCfg),
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Budget:      budget,
	}
}

// Name returns "ai".
func (s *OpenAI) Name() string { return "ai" }

// Summarize asks the model for a business profile of pages.
func (s *OpenAI) Summarize(ctx context.Context, pages *core.PipelineResult) (*core.Summary, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return nil, ErrUnavailable
	}
	if pages.Len() == 0 {
		return &core.Summary{Text: NoContent, Source: s.Name()}, nil
	}

	req := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(pages, s.Budget)},
		},
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	}
	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("summary call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptySummary
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, ErrEmptySummary
	}
	return &core.Summary{Text: text, Source: s.Name()}, nil
}
