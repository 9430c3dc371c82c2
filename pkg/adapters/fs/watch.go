package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the bursts of events editors and build
// tools produce for a single save.
const debounceWindow = 150 * time.Millisecond

// Watch observes the content root and calls onChange after writes
// settle. The watcher goroutine is tied to ctx and supervised through
// lifecycle.Go; Watch itself returns once the watcher is running.
func (s *Source) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := s.recursiveAdd(watcher); err != nil {
		_ = watcher.Close()
		return err
	}

	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return s.watchLoop(ctx, watcher, onChange)
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.Logger != nil {
			s.config.Logger.Error("content watcher stopped", "error", err)
		}
	}))

	return nil
}

func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, onChange func()) error {
	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if s.config.Logger != nil {
				s.config.Logger.Debug("content event", "name", event.Name, "op", event.Op.String())
			}

			// New directories need to be watched too.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			if pending == nil {
				pending = time.AfterFunc(debounceWindow, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				pending.Reset(debounceWindow)
			}

		case <-fire:
			pending = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if s.config.Logger != nil {
				s.config.Logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

func (s *Source) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(s.config.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
		}
		return nil
	})
}
