// ABOUTME: OpenAI-compatible summary provider with streaming support
// ABOUTME: Works against OpenAI or any OpenRouter-style endpoint via BaseURL

package ai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"stash-app-api/pkg/config"

	openai "github.com/sashabaranov/go-openai"
)

type openaiProvider struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func newOpenAIProvider(cfg config.AIConfig, model string) *openaiProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openaiProvider{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		maxTokens: cfg.MaxTokens,
	}
}

// StreamSummary streams a summary of content, relaying each delta to onChunk
func (p *openaiProvider) StreamSummary(ctx context.Context, content string, onChunk func(chunk string)) error {
	stream, err := p.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Stream:    true,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(summaryUserPrompt, content)},
		},
	})
	if err != nil {
		return fmt.Errorf("openai stream error: %w", err)
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("openai stream interrupted: %w", err)
		}

		if len(response.Choices) == 0 {
			continue
		}
		if delta := response.Choices[0].Delta.Content; delta != "" {
			onChunk(delta)
		}
	}
}

// ExtractTags derives topic tags from a finished summary
func (p *openaiProvider) ExtractTags(ctx context.Context, summary string) ([]string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: 128,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(tagsPrompt, summary)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty openai response")
	}

	return parseTags(resp.Choices[0].Message.Content), nil
}
