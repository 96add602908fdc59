// ABOUTME: BulkProgress domain model for incremental bulk-import reporting
// ABOUTME: One event is emitted per processed URL, in input order

package domain

// OutcomeStatus is the per-URL result carried by a progress event.
type OutcomeStatus string

const (
	// OutcomeSuccess means the URL was persisted or was already imported
	OutcomeSuccess OutcomeStatus = "success"

	// OutcomeFailed means scraping or persisting the URL failed
	OutcomeFailed OutcomeStatus = "failed"
)

// BulkProgress is one unit of the streamed bulk-import completion signal.
// Completed increases by exactly one per event; the final event of a run
// has Completed == Total.
type BulkProgress struct {
	// Completed is the number of URLs processed so far (1-based)
	Completed int `json:"completed"`

	// Total is the number of URLs in the batch
	Total int `json:"total"`

	// URL is the URL that was just processed
	URL string `json:"url"`

	// Status is the outcome for that URL
	Status OutcomeStatus `json:"status"`
}
