package listing

import "github.com/reviewcheckk/listing-bot/internal/core/links"

// ExtractedFields holds the structured values pulled from a message for
// one link.
type ExtractedFields struct {
	Price         string
	IsMarketplace bool
	Size          string
	Pin           string
}

// Record is the per-link output of the pipeline. It is built fresh for
// every link, rendered, and discarded.
type Record struct {
	Title  string
	URL    links.CanonicalURL
	Fields ExtractedFields
}
