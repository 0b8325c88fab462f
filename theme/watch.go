package theme

import (
	"context"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/polykit/polykit/errs"
)

// Watch watches a theme file and emits a freshly loaded Theme whenever
// the file is written. The current contents are emitted immediately so
// the first receive gives the initial theme. Writes that fail to decode
// or validate are skipped, as are the zero-length reads a truncating
// save exposes mid-write; watching continues until the context is
// canceled, then the channel closes.
func Watch(ctx context.Context, path string) (<-chan *Theme, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "creating theme watcher")
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "watching theme %s", path)
	}

	out := make(chan *Theme)

	go func() {
		defer close(out)
		defer watcher.Close()

		if t, ok := readTheme(path); ok {
			select {
			case out <- t:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				t, ok := readTheme(path)
				if !ok {
					continue
				}
				select {
				case out <- t:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Keep watching despite transient errors.
			}
		}
	}()

	return out, nil
}

// readTheme loads the file for one emission. A truncating save exposes
// a zero-length file between the truncate and the write; empty reads
// are dropped like any failed decode.
func readTheme(path string) (*Theme, bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	t, err := Decode(data)
	if err != nil {
		return nil, false
	}
	return t, true
}
