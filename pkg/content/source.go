package content

import (
	"context"
	"time"
)

// Document is a raw content document as discovered by a Source.
type Document struct {
	// Slug is the unique, URL-safe identifier within its kind,
	// derived from the source filename.
	Slug string

	// Raw is the full document text, optionally starting with a
	// front-matter header.
	Raw []byte

	// Attached carries metadata resolved by the source itself (for
	// example from a sidecar file). When present it takes precedence
	// over front-matter parsed out of Raw.
	Attached Fields

	ModTime time.Time
}

// Source lists the documents of a content kind. Implementations exist
// for the filesystem and for in-memory fixtures; the Resolver does not
// care which.
type Source interface {
	List(ctx context.Context, kind Kind) ([]Document, error)
}

// Origin tags which resolution step produced a document's metadata.
type Origin int

const (
	OriginEmpty Origin = iota
	OriginAttached
	OriginParsed
)

func (o Origin) String() string {
	switch o {
	case OriginAttached:
		return "attached"
	case OriginParsed:
		return "parsed"
	}
	return "empty"
}

// resolveFields applies the two-step metadata resolution: metadata
// attached by the source wins, front-matter parsed from the raw text
// is the fallback, and absence of both yields empty Fields.
func resolveFields(doc Document) (Fields, []byte, Origin) {
	parsed, body := ParseFrontMatter(doc.Raw)

	if len(doc.Attached) > 0 {
		return doc.Attached, body, OriginAttached
	}
	if len(parsed) > 0 {
		return parsed, body, OriginParsed
	}
	return Fields{}, body, OriginEmpty
}
