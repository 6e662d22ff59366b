package content

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultQuiet = 100 * time.Millisecond

// Watcher reports edited content files. Bursts of writes are coalesced: a
// path is reported once the directory has been quiet for the settle time,
// so editors that write in several steps produce a single event.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan string
	Errors chan error

	accept func(string) bool
	quiet  time.Duration

	stop     chan struct{}
	finished chan struct{}
	once     sync.Once
}

type WatchOption func(*Watcher)

// WithFilter replaces IsContentFile as the path filter.
func WithFilter(accept func(path string) bool) WatchOption {
	return func(w *Watcher) {
		if accept != nil {
			w.accept = accept
		}
	}
}

// WithSettle sets how long the watched directories must stay quiet before
// pending paths are reported.
func WithSettle(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.quiet = d
		}
	}
}

// NewWatcher watches dirs (not recursively).
func NewWatcher(dirs []string, opts ...WatchOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:       fsw,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		accept:   IsContentFile,
		quiet:    defaultQuiet,
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes Events and Errors. Only the first call
// has an effect.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.finished
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.finished)

	pending := map[string]bool{}
	settle := time.NewTimer(w.quiet)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !w.accept(ev.Name) {
				continue
			}
			pending[ev.Name] = true
			settle.Reset(w.quiet)
		case <-settle.C:
			if !w.flush(pending) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

// flush reports pending paths in name order and empties the set. It
// returns false when the watcher is stopping.
func (w *Watcher) flush(pending map[string]bool) bool {
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	slices.Sort(names)
	clear(pending)
	for _, name := range names {
		select {
		case w.Events <- name:
		case <-w.stop:
			return false
		}
	}
	return true
}

// IsContentFile reports whether path is a content file or motion script.
func IsContentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
