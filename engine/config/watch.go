package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	fs   *fsnotify.Watcher
	path string

	onChange func(cfg *Config)

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// Watch starts reloading path on every write. The containing directory is watched so
// editors that save by renaming a temporary file are picked up. Files that fail to load
// are logged and skipped; onChange only ever sees valid configurations.
//
// Parameters:
//   - path: the configuration file
//   - onChange: called from the watcher goroutine with each successfully reloaded config
//
// Returns:
//   - *Watcher: the running watcher, stop it with Close
//   - error: the watch could not be established
func Watch(path string, onChange func(cfg *Config)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &Watcher{
		fs:       fs,
		path:     filepath.Clean(path),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("[Config] reload skipped: %v", err)
				continue
			}
			log.Printf("[Config] reloaded %s", w.path)
			if w.onChange != nil {
				w.onChange(cfg)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("[Config] watcher error: %v", err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine. Idempotent.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}
