// Package content resolves loosely-typed authored documents into
// strongly-typed content records.
//
// Documents arrive through a Source (filesystem, embedded bundle,
// in-memory fixtures). The Resolver merges attached or parsed
// front-matter with computed fields (reading time, normalized tags,
// excerpt), filters drafts, and serves slug-indexed, date-sorted
// collections.
package content

import "fmt"

// Kind is a content document category. Notes and projects are separate
// slug namespaces.
type Kind string

const (
	KindNotes    Kind = "notes"
	KindProjects Kind = "projects"
)

// Kinds lists every known content kind.
func Kinds() []Kind {
	return []Kind{KindNotes, KindProjects}
}

// ParseKind validates a user-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindNotes:
		return KindNotes, nil
	case KindProjects:
		return KindProjects, nil
	}
	return "", fmt.Errorf("unknown content kind: %q", s)
}
