package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads preferences whenever the file is written. Reloaded values are delivered on
// Changes; the frame loop drains it so preferences are only applied on the main goroutine.
type Watcher struct {
	path    string
	w       *fsnotify.Watcher
	changes chan Prefs
	errs    chan error
	done    chan struct{}
}

// Watch starts watching path. The containing directory is watched so editors that replace the
// file on save are followed.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	cw := &Watcher{
		path:    filepath.Clean(path),
		w:       w,
		changes: make(chan Prefs, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

func (cw *Watcher) loop() {
	defer close(cw.done)
	for {
		select {
		case ev, ok := <-cw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			p, err := Load(cw.path)
			if err != nil {
				cw.send(err)
				continue
			}
			// keep only the newest preferences
			select {
			case <-cw.changes:
			default:
			}
			cw.changes <- p
		case err, ok := <-cw.w.Errors:
			if !ok {
				return
			}
			cw.send(err)
		}
	}
}

func (cw *Watcher) send(err error) {
	select {
	case cw.errs <- err:
	default:
	}
}

// Changes delivers reloaded preferences.
func (cw *Watcher) Changes() <-chan Prefs { return cw.changes }

// Errors delivers reload and watch errors. Errors are dropped while one is pending.
func (cw *Watcher) Errors() <-chan error { return cw.errs }

// Close stops watching.
func (cw *Watcher) Close() error {
	err := cw.w.Close()
	<-cw.done
	return err
}
