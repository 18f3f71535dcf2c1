package library

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of document change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // document edited or created
	ChangeRemoved                    // document deleted
)

// Change represents a detected change under the library root. The library
// never merges concurrent edits; a change only signals that the in-memory
// model is stale and should be rebuilt with a fresh Load.
type Change struct {
	Kind ChangeKind
	Path string // absolute path
}

// Watcher monitors the library root for document changes using fsnotify.
type Watcher struct {
	Root    string
	Changes <-chan Change // read-only external channel

	changes chan Change
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given library root.
func NewWatcher(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Root:    root,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the root directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Root); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: editors fire several events per save.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]fsnotify.Event)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for _, ev := range pending {
					w.emit(ev)
				}
				return
			}
			if !isDocumentFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = event
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			for path, ev := range pending {
				w.emit(ev)
				delete(pending, path)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next sync catches up.
		}
	}
}

func isDocumentFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".md") && !strings.HasPrefix(base, ".")
}

func (w *Watcher) emit(ev fsnotify.Event) {
	kind := ChangeModified
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		kind = ChangeRemoved
	}
	w.changes <- Change{Kind: kind, Path: ev.Name}
}
