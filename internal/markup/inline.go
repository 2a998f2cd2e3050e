// Package markup translates inline Markdown spans into HTML for the layout
// builder. It is a thin layer over goldmark so that emphasis precedence,
// combined bold+italic in either authoring order, nested bold links, and
// unbalanced-marker fallback all follow CommonMark semantics.
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Translator converts single-line text fragments to HTML. It is stateless
// per call and safe for concurrent use (goldmark.Markdown is).
type Translator struct {
	md goldmark.Markdown
}

// NewTranslator creates a Translator with autolinking enabled so bare URLs
// and email addresses in contact lines become clickable.
func NewTranslator() *Translator {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Translator{md: md}
}

// Inline renders a single text fragment to HTML with the block-level
// paragraph wrapper stripped. Unmatched emphasis or link markers are left
// as literal text by goldmark rather than failing.
func (t *Translator) Inline(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := t.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("rendering inline markup: %w", err)
	}

	return stripParagraph(buf.String()), nil
}

// stripParagraph unwraps the single <p> element goldmark emits around a
// one-line fragment. Multi-block output (not produced by single lines) is
// returned as-is.
func stripParagraph(rendered string) string {
	s := strings.TrimSpace(rendered)
	if !strings.HasPrefix(s, "<p>") || !strings.HasSuffix(s, "</p>") {
		return s
	}
	inner := s[len("<p>") : len(s)-len("</p>")]
	if strings.Contains(inner, "<p>") {
		return s
	}
	return inner
}
