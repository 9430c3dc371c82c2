package content

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var (
	fmOpen     = []byte("---\n")
	fmCloseMid = []byte("\n---\n")
	fmCloseEnd = []byte("\n---")
)

// ParseFrontMatter extracts the YAML header delimited by "---" lines
// at the very start of a document. It is deliberately lenient:
// documents with no header, an unclosed header, or a header that fails
// YAML parsing yield empty Fields rather than an error, so malformed
// metadata degrades to defaults instead of blocking a page.
//
// The returned body is the document content after the closing
// delimiter (or the whole document when no header was recognized).
func ParseFrontMatter(raw []byte) (Fields, []byte) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(norm, fmOpen) {
		return Fields{}, norm
	}
	rest := norm[len(fmOpen):]

	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, []byte("---\n")):
		// Empty header: "---\n---\n..."
		header = nil
		body = rest[len("---\n"):]
	default:
		// First closing delimiter wins (non-greedy span).
		if idx := bytes.Index(rest, fmCloseMid); idx >= 0 {
			header = rest[:idx]
			body = rest[idx+len(fmCloseMid):]
		} else if bytes.HasSuffix(rest, fmCloseEnd) {
			header = rest[:len(rest)-len(fmCloseEnd)]
			body = nil
		} else {
			// Opened but never closed: treat as metadata-free.
			return Fields{}, norm
		}
	}

	fields := Fields{}
	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &fields); err != nil || fields == nil {
			return Fields{}, body
		}
	}
	return fields, body
}
