package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileKind classifies the files the editor reloads while running.
type FileKind int

const (
	ConfigFile FileKind = iota + 1
	ScriptFile
)

func (k FileKind) String() string {
	switch k {
	case ConfigFile:
		return "config"
	case ScriptFile:
		return "script"
	default:
		return "unknown"
	}
}

// Classify reports the kind of path by extension. Other files are not watched.
func Classify(path string) (FileKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ConfigFile, true
	case ".tengo":
		return ScriptFile, true
	}
	return 0, false
}

// Change is one settled edit to a watched file.
type Change struct {
	Path string
	Kind FileKind
}

const debounceWindow = 100 * time.Millisecond

// debouncer drops repeat events for a path inside the window. Editors often
// write a file in several syscalls.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, last: make(map[string]time.Time)}
}

func (d *debouncer) ready(path string, now time.Time) bool {
	if t, ok := d.last[path]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[path] = now
	return true
}

// Watcher reports edits to config and script files in the watched directories.
type Watcher struct {
	fs       *fsnotify.Watcher
	changes  chan Change
	errs     chan error
	stop     chan struct{}
	stopped  chan struct{}
	closeErr error
	once     sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop(newDebouncer(debounceWindow))
	return w, nil
}

// Changes is closed once the watcher stops.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Errors holds at most one pending error; later ones are dropped until it is read.
func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.stop)
		w.closeErr = w.fs.Close()
		<-w.stopped
		close(w.changes)
		close(w.errs)
	})
	return w.closeErr
}

func (w *Watcher) loop(d *debouncer) {
	defer close(w.stopped)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := w.accept(event, d)
			if !ok {
				continue
			}
			select {
			case w.changes <- change:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) accept(event fsnotify.Event, d *debouncer) (Change, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return Change{}, false
	}
	kind, ok := Classify(event.Name)
	if !ok || !d.ready(event.Name, time.Now()) {
		return Change{}, false
	}
	return Change{Path: event.Name, Kind: kind}, true
}
