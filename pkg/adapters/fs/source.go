// Package fs provides the filesystem-backed document source: a content
// root with one subdirectory per kind, Markdown documents inside, and
// optional sidecar metadata files.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/introspection"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/davideasaf/neuralnotes/pkg/content"
)

// documentGlob matches content documents at any depth below a kind
// directory.
const documentGlob = "**/*.md"

// sidecarSuffix is the extension of optional attached-metadata files:
// "foo.md" may carry "foo.meta.yaml" next to it.
const sidecarSuffix = ".meta.yaml"

// Config holds the configuration for the filesystem source.
type Config struct {
	// Root is the content directory containing one subdirectory per
	// content kind (notes/, projects/).
	Root string

	// Logger may be nil.
	Logger *slog.Logger
}

// Source implements content.Source over a directory tree.
type Source struct {
	config Config

	mu            sync.Mutex
	watcherActive bool
}

// NewSource creates a filesystem source rooted at config.Root.
func NewSource(config Config) *Source {
	return &Source{config: config}
}

// List discovers every document of the given kind. A document that
// cannot be read is logged and skipped; only a failure to scan the
// kind directory itself is returned as an error.
func (s *Source) List(ctx context.Context, kind content.Kind) ([]content.Document, error) {
	if _, err := content.ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.config.Root, string(kind))
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content directory for %s: %w", kind, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("content path for %s is not a directory: %s", kind, dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), documentGlob)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	docs := make([]content.Document, 0, len(matches))
	for _, rel := range matches {
		path := filepath.Join(dir, filepath.FromSlash(rel))

		raw, err := os.ReadFile(path)
		if err != nil {
			if s.config.Logger != nil {
				s.config.Logger.Warn("skipping unreadable document", "path", path, "error", err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		doc := content.Document{
			Slug:     slugFromPath(rel),
			Raw:      raw,
			Attached: s.loadSidecar(path),
			ModTime:  info.ModTime(),
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// loadSidecar reads the attached-metadata file for a document, if one
// exists. A sidecar that fails to parse is treated as absent, matching
// the tolerance of front-matter parsing.
func (s *Source) loadSidecar(docPath string) content.Fields {
	path := strings.TrimSuffix(docPath, filepath.Ext(docPath)) + sidecarSuffix

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	fields := content.Fields{}
	if err := yaml.Unmarshal(data, &fields); err != nil || fields == nil {
		if s.config.Logger != nil {
			s.config.Logger.Warn("ignoring malformed sidecar metadata", "path", path, "error", err)
		}
		return nil
	}
	return fields
}

// slugFromPath derives the document slug from its path relative to the
// kind directory: "ml/first-note.md" -> "ml/first-note".
func slugFromPath(rel string) string {
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}

// SourceState exposes internal state for observability.
type SourceState struct {
	Root          string `json:"root"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SourceState{
		Root:          s.config.Root,
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "fs-source"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)
var _ content.Source = (*Source)(nil)

func (s *Source) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
