package siteconfig

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrNotLoaded is returned by Current before the first Load has
// completed. Hitting it is a programmer error: synchronous access is
// only for code paths that run after initialization.
var ErrNotLoaded = errors.New("site configuration not loaded")

// Provider owns the load-once lifecycle of the site configuration.
// Load is idempotent and safe for concurrent use: the mutex guarantees
// at most one underlying read even when multiple callers race the
// first load.
type Provider struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	loaded bool
	cfg    Config
}

// NewProvider creates a Provider for the configuration file at path.
// logger may be nil.
func NewProvider(path string, logger *slog.Logger) *Provider {
	return &Provider{path: path, logger: logger}
}

// Load reads the configuration on first call and memoizes the result.
// It never fails outward: a read or parse failure is logged once and
// the hard-coded defaults are substituted.
func (p *Provider) Load(ctx context.Context) Config {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return p.cfg
	}
	if err := ctx.Err(); err != nil {
		// Treat cancellation like any other load failure.
		p.cfg = Default()
		p.loaded = true
		return p.cfg
	}

	cfg, err := Load(p.path)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("site configuration load failed, using defaults",
				"path", p.path, "error", err)
		}
		cfg = Default()
	}

	p.cfg = cfg
	p.loaded = true
	return p.cfg
}

// Current returns the memoized configuration, or ErrNotLoaded if Load
// has never completed.
func (p *Provider) Current() (Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		return Config{}, ErrNotLoaded
	}
	return p.cfg, nil
}
