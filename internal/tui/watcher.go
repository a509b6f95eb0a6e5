package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DirWatcher watches the currently displayed directory and notifies the
// event loop when its contents change on disk. Events are debounced so a
// burst of writes produces a single reload.
type DirWatcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	program *tea.Program
	current string
	done    chan struct{}

	debounce time.Duration
	timer    *time.Timer
}

// NewDirWatcher creates a watcher. Call Close when the UI exits.
func NewDirWatcher() (*DirWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &DirWatcher{
		watcher:  fw,
		done:     make(chan struct{}),
		debounce: 300 * time.Millisecond,
	}
	go w.loop()
	return w, nil
}

// SetProgram sets the tea.Program used to deliver change notifications
func (w *DirWatcher) SetProgram(p *tea.Program) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.program = p
}

// Watch switches the watcher to a new directory, dropping the previous one
func (w *DirWatcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current == dir {
		return nil
	}
	if w.current != "" {
		if err := w.watcher.Remove(w.current); err != nil {
			logrus.Debugf("Failed to unwatch %s: %v", w.current, err)
		}
		w.current = ""
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.current = dir
	return nil
}

// Close stops the watcher and its event loop
func (w *DirWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *DirWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0 {
				w.scheduleNotify()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logrus.Debugf("Watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

// scheduleNotify arms the debounce timer; the notification fires once the
// directory has been quiet for the debounce window
func (w *DirWatcher) scheduleNotify() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		p := w.program
		w.mu.Unlock()
		if p != nil {
			p.Send(directoryChangedMsg{})
		}
	})
}
