// Package readability isolates the main body of blog posts with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/sifter"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sifter.Extractor at compile time.
var _ sifter.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article body from post HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*sifter.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sifter.Errorf(sifter.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &sifter.ExtractResult{
		ContentHTML: article.Content,
	}, nil
}
