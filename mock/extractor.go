package mock

import (
	"context"

	"github.com/fwojciec/sifter"
)

var _ sifter.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of sifter.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ sifter.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sifter.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sifter.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sifter.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ sifter.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of sifter.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
