package schema

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/assocgen/errors"
	"github.com/teranos/assocgen/logger"
)

// Watcher watches a schema file for changes and triggers reload callbacks
// with the freshly loaded schema. Used by the CLI's watch mode to
// regenerate on edit.
type Watcher struct {
	schemaPath     string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ReloadCallback is called with the reloaded schema after every detected
// change. A load failure is not delivered to callbacks; it is logged and
// the watcher keeps running, so a half-saved edit does not kill the loop.
type ReloadCallback func(*Schema) error

// NewWatcher creates a watcher for the given schema file.
func NewWatcher(schemaPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	if err := watcher.Add(schemaPath); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watching schema file %s", schemaPath)
	}

	return &Watcher{
		schemaPath:     schemaPath,
		watcher:        watcher,
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid editor writes
	}, nil
}

// OnReload registers a callback to be called after each reload
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for schema file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only reload on Write or Create events. Editors that replace
			// the file on save surface as Create.
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("schema change detected",
					logger.FieldFile, event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("schema watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("schema reload failed",
				logger.FieldFile, w.schemaPath,
				logger.FieldError, err)
		}
	})
}

// reload loads the schema and calls all registered callbacks
func (w *Watcher) reload() error {
	s, err := Load(w.schemaPath)
	if err != nil {
		return err
	}

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(s); err != nil {
			logger.Warnw("schema reload callback error",
				logger.FieldError, err)
			// Continue calling other callbacks even if one fails
		}
	}

	return nil
}

// Stop stops watching for schema changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
