package preview

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Watcher polls a set of paths for modification-time changes. Polling
// avoids a platform watcher dependency and is cheap at dev-tree sizes.
type Watcher struct {
	paths    []string
	interval time.Duration
	onChange func(path string)
	snapshot map[string]time.Time
}

// NewWatcher creates a watcher over the given files and directories.
// onChange is called with the changed path, once per changed file per
// poll. A zero interval defaults to 500ms.
func NewWatcher(paths []string, interval time.Duration, onChange func(path string)) *Watcher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Watcher{
		paths:    paths,
		interval: interval,
		onChange: onChange,
	}
}

// Run polls until the context is canceled. The first scan only
// records the baseline; changes are reported from the second scan on.
func (w *Watcher) Run(ctx context.Context) error {
	w.snapshot = w.scan()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll()
		}
	}
}

// poll runs one scan and reports differences against the snapshot.
func (w *Watcher) poll() {
	current := w.scan()

	for path, mod := range current {
		prev, seen := w.snapshot[path]
		if !seen || !prev.Equal(mod) {
			w.onChange(path)
		}
	}
	for path := range w.snapshot {
		if _, still := current[path]; !still {
			w.onChange(path)
		}
	}

	w.snapshot = current
}

// scan collects modification times under every watched path.
func (w *Watcher) scan() map[string]time.Time {
	result := make(map[string]time.Time)

	for _, root := range w.paths {
		info, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			result[root] = info.ModTime()
			continue
		}

		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if fi, err := d.Info(); err == nil {
				result[path] = fi.ModTime()
			}
			return nil
		})
	}

	return result
}
