package content

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

var plainSpaceRe = regexp.MustCompile(`\s+`)

// Markdown renders document bodies. It also provides a render-to-text
// capability used when a measurable raw body is not available.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates the renderer with the GFM extensions the site
// content uses.
func NewMarkdown() *Markdown {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.Strikethrough,
			extension.Table,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Markdown{md: md}
}

// Render converts Markdown source to HTML.
func (m *Markdown) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PlainText extracts the readable text of a Markdown document by
// walking the parsed AST. Code blocks and spans are skipped so the
// output reflects prose, matching the word-count semantics of the
// reading-time estimator.
func (m *Markdown) PlainText(src []byte) string {
	doc := m.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			buf.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(plainSpaceRe.ReplaceAllString(buf.String(), " "))
}

// Excerpt returns the first maxWords words of the document's plain
// text, with an ellipsis when truncated.
func (m *Markdown) Excerpt(src []byte, maxWords int) string {
	words := strings.Fields(m.PlainText(src))
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + "…"
}
