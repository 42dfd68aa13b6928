// Package goquery implements HTML text extraction on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sifter"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements sifter.TextExtractor at compile time.
var _ sifter.TextExtractor = (*TextExtractor)(nil)

// nonContentSelector matches elements whose text is never visible content.
const nonContentSelector = "script, style"

// TextExtractor strips markup from HTML fragments.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText removes script and style blocks, joins the remaining text
// nodes with single spaces, and normalizes the result.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	// With scripting disabled, noscript children parse as ordinary elements
	// instead of one raw text node.
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", sifter.Errorf(sifter.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	doc.Find(nonContentSelector).Remove()

	var parts []string
	for _, n := range doc.Nodes {
		collectText(n, &parts)
	}

	return sifter.NormalizeText(strings.Join(parts, " ")), nil
}

// collectText appends every text node under n in document order.
// Comments and doctype nodes are skipped.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
