// Package readtime estimates how long a piece of content takes to read.
//
// The estimator works on raw Markdown: structural markup is stripped
// first so that syntax characters and link targets do not inflate the
// word count.
package readtime

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultWordsPerMinute is used when the caller supplies a
// non-positive reading speed.
const DefaultWordsPerMinute = 200

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`\n]*`")
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisRe   = regexp.MustCompile(`(\*{1,3}|_{1,3})([^*_\n]+)(\*{1,3}|_{1,3})`)
	hrRe         = regexp.MustCompile(`(?m)^[ \t]*(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)
	quoteRe      = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	listRe       = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// StripCode removes fenced code blocks and inline code spans,
// including their contents.
func StripCode(text string) string {
	text = fencedCodeRe.ReplaceAllString(text, " ")
	text = inlineCodeRe.ReplaceAllString(text, " ")
	return text
}

// Strip reduces Markdown to the plain prose a reader actually reads.
// Code is discarded, emphasis and link markers are removed while their
// inner text is kept, images vanish entirely. The result is collapsed
// to single-space separated words, so Strip is idempotent on its own
// output.
func Strip(text string) string {
	text = StripCode(text)
	text = headingRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "$2")
	// Images before links: image syntax embeds link syntax.
	text = imageRe.ReplaceAllString(text, " ")
	text = linkRe.ReplaceAllString(text, "$1")
	text = hrRe.ReplaceAllString(text, " ")
	text = quoteRe.ReplaceAllString(text, "")
	text = listRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Estimate returns a human label like "8 min read" for the given raw
// Markdown. Minutes are ceil(words/wordsPerMinute) with a floor of 1,
// so empty or whitespace-only input still reports "1 min read".
// A non-positive wordsPerMinute silently falls back to
// DefaultWordsPerMinute.
func Estimate(text string, wordsPerMinute int, includeCode bool) string {
	wpm := wordsPerMinute
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}

	if !includeCode {
		text = StripCode(text)
	}

	words := len(strings.Fields(Strip(text)))
	minutes := (words + wpm - 1) / wpm
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
