package neuralnotes

import (
	"log/slog"

	"github.com/davideasaf/neuralnotes/pkg/content"
)

// options holds the internal configuration for a Site.
type options struct {
	configPath    string
	logger        *slog.Logger
	source        content.Source
	includeDrafts bool
}

// Option defines a functional option for configuring a Site.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		configPath: "site.yaml",
	}
}

// WithConfigPath sets the location of the site configuration document.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithLogger sets the logger for the site components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource injects a custom document source (e.g. in-memory
// fixtures). If provided, the default filesystem source is skipped.
func WithSource(source content.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithDrafts includes draft documents in all collections. Meant for
// authoring tools, never for public serving.
func WithDrafts(include bool) Option {
	return func(o *options) {
		o.includeDrafts = include
	}
}
