// ABOUTME: Anthropic summary provider with streaming support
// ABOUTME: Streams message deltas and derives tags from finished summaries

package ai

import (
	"context"
	"fmt"

	"stash-app-api/pkg/config"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

type anthropicProvider struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

func newAnthropicProvider(cfg config.AIConfig, model string) *anthropicProvider {
	return &anthropicProvider{
		client:    anthropic.NewClient(cfg.APIKey),
		model:     model,
		maxTokens: cfg.MaxTokens,
	}
}

// StreamSummary streams a summary of content, relaying each delta to onChunk
func (p *anthropicProvider) StreamSummary(ctx context.Context, content string, onChunk func(chunk string)) error {
	_, err := p.client.CreateMessagesStream(ctx, anthropic.MessagesStreamRequest{
		MessagesRequest: anthropic.MessagesRequest{
			Model:     anthropic.Model(p.model),
			MaxTokens: p.maxTokens,
			System:    summarySystemPrompt,
			Messages: []anthropic.Message{
				anthropic.NewUserTextMessage(fmt.Sprintf(summaryUserPrompt, content)),
			},
		},
		OnContentBlockDelta: func(data anthropic.MessagesEventContentBlockDeltaData) {
			if data.Delta.Text != nil && *data.Delta.Text != "" {
				onChunk(*data.Delta.Text)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("anthropic stream interrupted: %w", err)
	}

	return nil
}

// ExtractTags derives topic tags from a finished summary
func (p *anthropicProvider) ExtractTags(ctx context.Context, summary string) ([]string, error) {
	resp, err := p.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(p.model),
		MaxTokens: 128,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(fmt.Sprintf(tagsPrompt, summary)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("empty anthropic response")
	}

	return parseTags(resp.Content[0].GetText()), nil
}
