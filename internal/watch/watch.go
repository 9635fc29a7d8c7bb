// Package watch re-runs an archive update whenever markdown files change in
// a directory.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watcher observes a directory for markdown changes and invokes a callback.
// Updates run one at a time; bursts of events (editors often fire several
// per save) are coalesced by a rate limiter.
type Watcher struct {
	dir     string
	index   string
	run     func() error
	limiter *rate.Limiter
}

// New returns a Watcher for dir. index is the root index filename; events
// on it are ignored so our own writes don't retrigger an update. run is
// invoked after each relevant change.
func New(dir, index string, run func() error) *Watcher {
	return &Watcher{
		dir:   dir,
		index: index,
		run:   run,
		// At most two updates per second; coalesces editor save bursts.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Run watches until ctx is cancelled. Callback errors are returned to the
// caller and stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
			drain(watcher.Events)
			if err := w.run(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// relevant reports whether the event should trigger an update: a create,
// write, remove, or rename of a markdown file other than the index itself.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if name == w.index {
		return false
	}
	return strings.HasSuffix(name, ".md")
}

// drain discards any events already queued, so a burst produces one update.
func drain(events chan fsnotify.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}
