package config

import (
	"path/filepath"
	"sync"
	"time"

	"Conveyor3D/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a belt config file on change and hands the parsed result
// to a callback. Events are debounced because editors fire several writes
// per save.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(BeltConfig)
	closeCh  chan struct{}
	once     sync.Once
}

// NewWatcher watches path and invokes onChange with each successfully parsed
// config. Parse failures are logged and skipped; the previous config stays
// in effect.
func NewWatcher(path string, onChange func(BeltConfig)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: many editors replace the file on save, which
	// drops a watch registered on the file itself
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     path,
		onChange: onChange,
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			cfg, err := Load(w.path)
			if err != nil {
				logger.Log.Warn("Belt config reload failed",
					zap.String("path", w.path), zap.Error(err))
				continue
			}
			logger.Log.Info("Belt config reloaded", zap.String("path", w.path))
			w.onChange(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Warn("Belt config watcher error", zap.Error(err))
		case <-w.closeCh:
			return
		}
	}
}
