package explorer

import (
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 150 * time.Millisecond

// fileWatcher reports writes to a single file. Editors often replace a
// file instead of writing it, so the parent directory is watched and
// events are matched by name.
type fileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan struct{}
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// startWatch starts watching path
func startWatch(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &fileWatcher{
		path:    abs,
		watcher: watcher,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *fileWatcher) loop() {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Debounce: editors emit several events per save
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, w.notify)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// notify records a pending change; repeated changes collapse into one
func (w *fileWatcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

// wait returns a command that blocks until the next change or error
func (w *fileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.changes:
			return fileChangedMsg{}
		case err := <-w.errs:
			return watchErrMsg{err: err}
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher
func (w *fileWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
