// Package neuralnotes is the composition root for the neuralnotes
// content pipeline.
//
// It connects the content domain (resolution, front-matter, reading
// time, media validation) with the infrastructure adapters
// (filesystem source, HTTP read API) for a client-rendered personal
// portfolio/blog site.
//
// Philosophy:
//
// Content is a static, build-time-known set of Markdown documents with
// YAML front-matter, split into two kinds: "notes" (blog posts) and
// "projects" (portfolio entries). The pipeline turns those
// loosely-typed documents into strongly-typed records with derived
// fields, and degrades gracefully: malformed metadata becomes
// defaults, a broken document is skipped, an unreadable collection is
// served empty. Only media embedding is strict, because iframes from
// arbitrary hosts are never rendered.
//
// Features:
//
//   - **Two-step metadata resolution**: sidecar-attached metadata wins,
//     front-matter parsed from the raw text is the fallback.
//   - **Derived fields**: reading time, normalized tags, excerpts and
//     slug-derived titles computed at load.
//   - **Trusted-media validation**: total functions mapping any URL to
//     a safe embed or a typed error.
//   - **Injected document source**: the resolver is portable across
//     filesystem, embedded and in-memory backends via content.Source.
//   - **Load once, serve memoized**: configuration and collections are
//     read once per process behind a mutex.
//
// Usage:
//
//	site := neuralnotes.New("./content",
//		neuralnotes.WithConfigPath("site.yaml"),
//		neuralnotes.WithLogger(logger),
//	)
//
//	notes := site.Notes(ctx)
//	item := site.Note(ctx, "my-first-note")
package neuralnotes
