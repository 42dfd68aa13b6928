// Package trafilatura isolates the main body of blog posts with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sifter"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sifter.Extractor at compile time.
var _ sifter.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to drop navigation, footers and comment
// sections from post HTML before text extraction.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Reader comments are excluded from
// the extracted body.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract returns the main content of rawHTML. ContentHTML is empty when
// trafilatura finds no main content.
func (e *Extractor) Extract(rawHTML string) (*sifter.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sifter.Errorf(sifter.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &sifter.ExtractResult{
		ContentHTML: contentHTML,
	}, nil
}
