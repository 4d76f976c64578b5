// Package watch notifies the picker when the tries directory changes
// underneath a running session.
package watch

import (
	"sync"

	"trygo/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the tries directory using fsnotify. Events are
// coalesced into a single dirty signal per render tick: the picker
// reloads the whole snapshot anyway, so individual events carry no
// extra information.
type Watcher struct {
	dir       string
	fsWatcher *fsnotify.Watcher

	// Capacity-1 channel; a pending signal swallows further events.
	changed chan struct{}

	stopChan chan struct{}
	mutex    sync.Mutex
	running  bool
}

// New creates a watcher for the given directory.
func New(dir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		dir:       dir,
		fsWatcher: fsWatcher,
		changed:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// Changed returns the channel that signals a stale snapshot.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Start begins the event processing loop.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return nil
	}
	w.running = true
	w.mutex.Unlock()

	go func() {
		log.LogWithFields(log.F("directory", w.dir)).Debug("watcher started")
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
					continue
				}
				select {
				case w.changed <- struct{}{}:
				default:
					// A reload is already pending
				}
			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Debug("fsnotify watcher error")
			case <-w.stopChan:
				return
			}
		}
	}()
	return nil
}

// Stop shuts down the watcher and its event loop.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.fsWatcher.Close()
}
