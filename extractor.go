package sifter

import "context"

// TextExtractor turns an HTML fragment into normalized plain text.
type TextExtractor interface {
	// ExtractText removes non-content elements, extracts visible text, and
	// normalizes it with NormalizeText. The result never contains empty lines.
	ExtractText(html string) (string, error)
}

// ExtractResult holds the main content found in an HTML document.
type ExtractResult struct {
	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor isolates the main content of an HTML document, removing
// boilerplate before text extraction.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Limiter throttles writes to the store.
type Limiter interface {
	// Wait blocks until the next write is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
