// ABOUTME: AI provider factory for summary generation and tag extraction
// ABOUTME: Selects between OpenAI-compatible and Anthropic backends from config

package ai

import (
	"fmt"
	"strings"

	"stash-app-api/core/interfaces"
	"stash-app-api/pkg/config"
)

// Provider generates summaries and derives tags
type Provider interface {
	interfaces.SummaryGenerator
	interfaces.TagExtractor
}

// NewProvider creates a Provider from the given AI config
func NewProvider(cfg config.AIConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI not configured: missing API key")
	}

	switch cfg.Provider {
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return newOpenAIProvider(cfg, model), nil
	case "anthropic":
		model := cfg.Model
		if model == "" {
			model = "claude-3-5-haiku-latest"
		}
		return newAnthropicProvider(cfg, model), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: openai, anthropic)", cfg.Provider)
	}
}

const summarySystemPrompt = `You are a helpful assistant that creates concise, informative summaries of web content.
Your summaries should:
- Be 2-3 paragraphs long
- Capture the main points and key takeaways
- Be written in a clear, professional tone
- Not include any markdown formatting`

const summaryUserPrompt = "Please summarise the following content:\n\n%s"

const tagsPrompt = `Given this summary of a saved web page, provide up to 5 topic tags (single lowercase words like: infrastructure, rust, performance, databases, security, frontend, api, devops).

Format your response EXACTLY like this:
TAGS: tag1, tag2, tag3

Summary:
%s`

// parseTags extracts the tag list from a TAGS: response line
func parseTags(text string) []string {
	var tags []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "TAGS:") {
			continue
		}
		tagStr := strings.TrimSpace(strings.TrimPrefix(line, "TAGS:"))
		for _, t := range strings.Split(tagStr, ",") {
			t = strings.TrimSpace(strings.ToLower(t))
			if t != "" {
				tags = append(tags, t)
			}
		}
		if len(tags) > 5 {
			tags = tags[:5]
		}
		break
	}
	return tags
}
