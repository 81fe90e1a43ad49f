package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Disk.Watch when a durable slot changes underneath a
// running process, e.g. another familynote invocation wrote the tree.
type Event struct {
	Key string
}

// Watch streams slot-change events until ctx is cancelled. Callers should
// drain the returned channel to avoid losing notifications; the channel is
// closed once ctx is done or the watcher fails.
func (d *Disk) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(d.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(d.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", d.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		// Coalesce filesystem storms: a write often arrives as several
		// create/write/rename events for the same slot file.
		const settle = 100 * time.Millisecond
		dirty := make(map[string]struct{})
		timer := time.NewTimer(settle)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Cannot classify the change; report the data slot dirty so
				// clients refresh.
				dirty[DataKey] = struct{}{}
				timer.Reset(settle)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(evt.Name)
				if key != DataKey && key != ThemeKey {
					continue
				}
				dirty[key] = struct{}{}
				timer.Reset(settle)
			case <-timer.C:
				for key := range dirty {
					select {
					case events <- Event{Key: key}:
					default:
						// Drop when the consumer lags; it will re-read the
						// slot on its next refresh anyway.
					}
					delete(dirty, key)
				}
			}
		}
	}()

	return events, nil
}
