package content

import (
	"context"
	"html/template"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/davideasaf/neuralnotes/pkg/readtime"
	"github.com/davideasaf/neuralnotes/pkg/siteconfig"
)

const excerptWords = 40

// Item is a fully resolved content record. Consumers receive it as a
// read-only view; only the Resolver constructs Items.
type Item struct {
	Slug string        `json:"slug"`
	Meta Meta          `json:"meta"`
	Body template.HTML `json:"body"`
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDrafts makes the resolver include documents marked as drafts.
// Public listings never want this; the check command does.
func WithDrafts(include bool) ResolverOption {
	return func(r *Resolver) {
		r.includeDrafts = include
	}
}

// WithLogger sets the logger. A nil logger silences the resolver.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Resolver turns raw documents into resolved content collections.
//
// Collections are loaded once per kind and memoized behind a mutex, so
// concurrent first callers trigger at most one underlying load. A
// failure to list a whole collection is logged and served as an empty
// list; a failure isolated to one document skips that document only.
type Resolver struct {
	source        Source
	config        *siteconfig.Provider
	markdown      *Markdown
	logger        *slog.Logger
	includeDrafts bool

	mu    sync.Mutex
	cache map[Kind][]Item
}

// NewResolver wires a Resolver to its document source and site
// configuration.
func NewResolver(source Source, config *siteconfig.Provider, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		source:   source,
		config:   config,
		markdown: NewMarkdown(),
		cache:    make(map[Kind][]Item),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadAll returns every published item of the given kind, sorted by
// date descending. Items with unparseable dates sort last. The result
// is memoized; use Invalidate to force a reload.
func (r *Resolver) LoadAll(ctx context.Context, kind Kind) []Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	if items, ok := r.cache[kind]; ok {
		return items
	}

	items := r.load(ctx, kind)
	r.cache[kind] = items
	return items
}

// GetBySlug returns the item with an exact slug match, or nil. There
// is no partial or fuzzy matching.
func (r *Resolver) GetBySlug(ctx context.Context, kind Kind, slug string) *Item {
	for _, item := range r.LoadAll(ctx, kind) {
		if item.Slug == slug {
			return &item
		}
	}
	return nil
}

// Invalidate drops all memoized collections. The filesystem watcher
// calls this when content changes on disk.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[Kind][]Item)
}

func (r *Resolver) load(ctx context.Context, kind Kind) []Item {
	docs, err := r.source.List(ctx, kind)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("content discovery failed, serving empty collection",
				"kind", kind, "error", err)
		}
		return []Item{}
	}

	cfg := r.config.Load(ctx)

	items := make([]Item, 0, len(docs))
	seen := make(map[string]bool, len(docs))

	for _, doc := range docs {
		if seen[doc.Slug] {
			if r.logger != nil {
				r.logger.Warn("duplicate slug, keeping first document",
					"kind", kind, "slug", doc.Slug)
			}
			continue
		}

		item, err := r.buildItem(kind, doc, cfg)
		if err != nil {
			if r.logger != nil {
				r.logger.Warn("skipping document",
					"kind", kind, "slug", doc.Slug, "error", err)
			}
			continue
		}

		seen[doc.Slug] = true
		if item.Meta.Base().Draft && !r.includeDrafts {
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].Meta.Base().Time(), items[j].Meta.Base().Time()
		switch {
		case ti.IsZero():
			return false
		case tj.IsZero():
			return true
		}
		return ti.After(tj)
	})

	return items
}

func (r *Resolver) buildItem(kind Kind, doc Document, cfg siteconfig.Config) (Item, error) {
	fields, body, origin := resolveFields(doc)

	html, err := r.markdown.Render(body)
	if err != nil {
		return Item{}, err
	}

	var meta Meta
	switch kind {
	case KindNotes:
		m := noteMetaFromFields(fields, doc.Slug, cfg.Content.DefaultAuthor)
		m.ReadTime = r.readTime(body, cfg)
		if m.Excerpt == "" {
			m.Excerpt = r.markdown.Excerpt(body, excerptWords)
		}
		meta = &m
	case KindProjects:
		m := projectMetaFromFields(fields, doc.Slug)
		meta = &m
	default:
		_, err := ParseKind(string(kind))
		return Item{}, err
	}

	if r.logger != nil {
		r.logger.Debug("resolved document",
			"kind", kind, "slug", doc.Slug, "meta", origin.String())
	}

	return Item{Slug: doc.Slug, Meta: meta, Body: template.HTML(html)}, nil
}

// readTime measures the raw body when one is available, and falls back
// to rendering the document to plain text otherwise.
func (r *Resolver) readTime(body []byte, cfg siteconfig.Config) string {
	text := string(body)
	if len(text) == 0 {
		text = r.markdown.PlainText(body)
	}
	return readtime.Estimate(text, cfg.Reading.WordsPerMinute, cfg.Reading.IncludeCodeInWordCount)
}

// ResolverState exposes internal state for observability.
type ResolverState struct {
	CachedKinds   []string `json:"cached_kinds"`
	IncludeDrafts bool     `json:"include_drafts"`
}

// State implements introspection.Introspectable.
func (r *Resolver) State() any {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]string, 0, len(r.cache))
	for k := range r.cache {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	return ResolverState{
		CachedKinds:   kinds,
		IncludeDrafts: r.includeDrafts,
	}
}

// ComponentType implements introspection.Component.
func (r *Resolver) ComponentType() string {
	return "resolver"
}

var _ introspection.Introspectable = (*Resolver)(nil)
var _ introspection.Component = (*Resolver)(nil)
