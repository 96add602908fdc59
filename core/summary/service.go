// ABOUTME: Summary service streams AI-generated summaries for saved items
// ABOUTME: Persists the finished summary and derived tags only on clean completion

package summary

import (
	"context"
	"strings"

	"stash-app-api/core/domain"
	coreerrors "stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
)

// Service handles on-demand summarization of saved items
type Service struct {
	deps      interfaces.Dependencies
	storage   interfaces.ItemStorage
	generator interfaces.SummaryGenerator
	tagger    interfaces.TagExtractor
}

// NewService creates a new summary service instance
func NewService(deps interfaces.Dependencies, storage interfaces.ItemStorage, generator interfaces.SummaryGenerator, tagger interfaces.TagExtractor) *Service {
	return &Service{
		deps:      deps,
		storage:   storage,
		generator: generator,
		tagger:    tagger,
	}
}

// StreamSummary generates a summary for the owner's item, relaying each
// text chunk to onChunk as it arrives. On clean completion the accumulated
// text is persisted as the item's summary in a single write, tags are
// derived from it, and the updated item is returned.
//
// The summary is buffered caller-side until the generator signals
// completion; an interrupted stream persists nothing and returns a
// GenerationError. Callers are responsible for not starting two concurrent
// runs for the same item.
func (s *Service) StreamSummary(ctx context.Context, ownerID, itemID string, onChunk func(chunk string)) (*domain.SavedItem, error) {
	item, err := s.storage.GetByID(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &coreerrors.NotFoundError{Resource: "item", ID: itemID}
	}

	if !item.HasContent() {
		return nil, &coreerrors.NoContentError{ItemID: itemID}
	}

	var accumulated strings.Builder
	err = s.generator.StreamSummary(ctx, item.Content, func(chunk string) {
		accumulated.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	})
	if err != nil {
		return nil, &coreerrors.GenerationError{ItemID: itemID, Err: err}
	}

	summaryText := accumulated.String()

	tags := s.extractTags(ctx, itemID, summaryText)

	if err := s.storage.UpdateSummary(ctx, ownerID, itemID, summaryText, tags); err != nil {
		return nil, coreerrors.WrapError(err, "failed to persist summary")
	}

	item.Summary = summaryText
	item.Tags = tags
	return item, nil
}

// extractTags derives tags from the finished summary. Tag extraction is
// best-effort: a failure leaves the item untagged rather than discarding
// the summary.
func (s *Service) extractTags(ctx context.Context, itemID, summaryText string) []string {
	if s.tagger == nil {
		return nil
	}

	tags, err := s.tagger.ExtractTags(ctx, summaryText)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Tag extraction failed", map[string]interface{}{
				"item":  itemID,
				"error": err.Error(),
			})
		}
		return nil
	}

	return tags
}
