package storage

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports external rewrites of tracks.json so the grid can refresh
// when the file is edited outside the app.
type Watcher struct {
	fs   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching the store's directory and invokes onChange whenever
// tracks.json is written or replaced. The callback runs on the watcher
// goroutine; callers must hop to the UI thread themselves.
func (s *Store) Watch(onChange func()) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fs: fs, done: make(chan struct{})}

	// Watch the directory, not the file: editors and our own atomic save
	// replace the file, which drops a file-level watch.
	if err := fs.Add(s.dir); err != nil {
		fs.Close()
		return nil, err
	}

	// Saves made before the watcher existed produced no events to swallow.
	s.selfWrites.Store(0)

	go w.loop(s, onChange)

	s.logger.Info().Str("path", s.path).Msg("track list watcher started")
	return w, nil
}

// loop selects on watcher channels and dispatches change events.
func (w *Watcher) loop(s *Store, onChange func()) {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != TracksFileName {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				// One rename lands on tracks.json per Save; skip its event
				// so only external edits reach the callback.
				if s.selfWrites.Load() > 0 {
					s.selfWrites.Add(-1)
					continue
				}
				onChange()
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			s.logger.Error().Err(err).Msg("track list watcher error")

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
