package neuralnotes

import (
	"context"
	"errors"

	"github.com/davideasaf/neuralnotes/pkg/adapters/fs"
	"github.com/davideasaf/neuralnotes/pkg/content"
	"github.com/davideasaf/neuralnotes/pkg/siteconfig"
)

// Site is the composition root: configuration provider, document
// source and content resolver wired together.
type Site struct {
	Config   *siteconfig.Provider
	Source   content.Source
	Resolver *content.Resolver
}

// New builds a Site over the given content root. By default documents
// come from the filesystem; tests inject in-memory sources through
// WithSource.
func New(contentRoot string, opts ...Option) *Site {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	provider := siteconfig.NewProvider(o.configPath, o.logger)

	source := o.source
	if source == nil {
		source = fs.NewSource(fs.Config{Root: contentRoot, Logger: o.logger})
	}

	resolver := content.NewResolver(source, provider,
		content.WithLogger(o.logger),
		content.WithDrafts(o.includeDrafts),
	)

	return &Site{
		Config:   provider,
		Source:   source,
		Resolver: resolver,
	}
}

// Notes returns all published notes, newest first.
func (s *Site) Notes(ctx context.Context) []content.Item {
	return s.Resolver.LoadAll(ctx, content.KindNotes)
}

// Projects returns all published projects, newest first.
func (s *Site) Projects(ctx context.Context) []content.Item {
	return s.Resolver.LoadAll(ctx, content.KindProjects)
}

// Note looks up a single note by slug, or nil.
func (s *Site) Note(ctx context.Context, slug string) *content.Item {
	return s.Resolver.GetBySlug(ctx, content.KindNotes, slug)
}

// Project looks up a single project by slug, or nil.
func (s *Site) Project(ctx context.Context, slug string) *content.Item {
	return s.Resolver.GetBySlug(ctx, content.KindProjects, slug)
}

// Watchable is implemented by sources that can observe their backing
// store for changes.
type Watchable interface {
	Watch(ctx context.Context, onChange func()) error
}

// Watch observes the document source if it supports watching, and
// drops the resolver's memoized collections whenever content changes.
func (s *Site) Watch(ctx context.Context) error {
	w, ok := s.Source.(Watchable)
	if !ok {
		return errors.New("source does not support watching")
	}
	return w.Watch(ctx, s.Resolver.Invalidate)
}
