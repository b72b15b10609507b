// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its file changes on disk.
//              The containing directory is watched so that editors that
//              replace the file through a rename are handled too.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with fsnotify

package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwstringx "github.com/msto63/pyanalyzer/foundation/utils/stringx"
)

// DebounceDelay collapses bursts of events from a single save
const DebounceDelay = 150 * time.Millisecond

// Watch starts watching the configuration file until ctx is cancelled or
// StopWatching is called. Reload failures keep the previous document and
// are passed to errFn when it is non-nil.
func (c *Config) Watch(ctx context.Context, errFn ...func(error)) error {
	c.mu.Lock()
	if mdwstringx.IsBlank(c.filePath) {
		c.mu.Unlock()
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Watch")
	}
	if c.watching {
		c.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		c.mu.Unlock()
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}

	absPath, err := filepath.Abs(c.filePath)
	if err != nil {
		absPath = c.filePath
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		c.mu.Unlock()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	c.watching = true
	c.stopCh = make(chan struct{})
	stopCh := c.stopCh
	c.mu.Unlock()

	var onErr func(error)
	if len(errFn) > 0 {
		onErr = errFn[0]
	}

	go c.watchLoop(ctx, watcher, absPath, stopCh, onErr)
	return nil
}

func (c *Config) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, absPath string, stopCh chan struct{}, onErr func(error)) {
	defer func() {
		watcher.Close()
		c.mu.Lock()
		c.watching = false
		c.mu.Unlock()
	}()

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-stopCh:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(DebounceDelay)

		case <-pending:
			pending = nil
			if err := c.Reload(); err != nil && onErr != nil {
				onErr(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if onErr != nil {
				onErr(mdwerror.Wrap(err, "config watcher error").
					WithCode(mdwerror.CodeConfigError).
					WithOperation("config.watchLoop"))
			}
		}
	}
}

// Reload re-reads the configuration file and notifies change handlers
func (c *Config) Reload() error {
	c.mu.RLock()
	filePath, format, defaults := c.filePath, c.format, c.defaults
	c.mu.RUnlock()

	if mdwstringx.IsBlank(filePath) {
		return mdwerror.New("configuration was not loaded from a file").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Reload")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Reload").
			WithDetail("filePath", filePath)
	}

	newData, err := parseContent(content, format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Reload").
			WithDetail("filePath", filePath)
	}

	c.mu.Lock()
	oldConfig := c.snapshot()
	c.data = mergeDefaults(newData, defaults)
	newConfig := c.snapshot()
	watchers := append([]ChangeHandler(nil), c.watchers...)
	c.mu.Unlock()

	for _, handler := range watchers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}

	return nil
}

// snapshot copies the document into a detached Config. Callers hold c.mu.
func (c *Config) snapshot() *Config {
	return &Config{
		data:      deepCopyMap(c.data),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
	}
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watching && c.stopCh != nil {
		close(c.stopCh)
		c.stopCh = nil
	}
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
