// Package htmltomarkdown renders digest text as Markdown instead of plain text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sifter"
)

// Ensure Converter implements sifter.TextExtractor at compile time.
var _ sifter.TextExtractor = (*Converter)(nil)

// Converter wraps html-to-markdown to turn HTML into normalized Markdown.
// Headings, emphasis and links survive as Markdown syntax; script and style
// elements are dropped by the base plugin.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// ExtractText converts HTML to Markdown and normalizes it with
// sifter.NormalizeText, so paragraph breaks collapse to single newlines.
func (c *Converter) ExtractText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", sifter.Errorf(sifter.EINVALID, "failed to convert HTML: %v", err)
	}

	return sifter.NormalizeText(md), nil
}
