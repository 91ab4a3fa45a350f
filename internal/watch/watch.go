// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package watch calls a handler when watched files change.
//
// The parent directories are watched rather than the files, so a file
// replaced by rename (as most build tools do) keeps being tracked. Bursts of
// events for one file are debounced into a single call.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/beastbytes/bundlegen/internal/logging"
)

// DefaultDebounce is the quiet period after the last event for a file
// before the handler runs.
const DefaultDebounce = 300 * time.Millisecond

// Handler is called with the path of a changed file. Calls are sequential.
type Handler func(ctx context.Context, path string)

// Options configures a [Watcher].
type Options struct {
	// Debounce overrides DefaultDebounce.
	Debounce time.Duration

	// Logger receives watch events; nil discards them.
	Logger *zap.Logger
}

// Watcher watches a fixed set of files.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	pending  map[string]time.Time
	debounce time.Duration
	handler  Handler
	logger   *zap.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	closed   bool
}

// New creates a Watcher for files. It does not watch until [Watcher.Start].
func New(files []string, handler Handler, opts Options) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watch: nil handler")
	}
	if len(files) == 0 {
		return nil, errors.New("watch: no files")
	}

	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", f, err)
		}
		set[abs] = struct{}{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		fsw:      fsw,
		files:    set,
		pending:  make(map[string]time.Time),
		debounce: debounce,
		handler:  handler,
		logger:   logging.OrNop(opts.Logger),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Files returns the watched file paths, sorted.
func (w *Watcher) Files() []string {
	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	slices.Sort(files)
	return files
}

// Start begins watching. It returns once the directories are registered;
// events are handled until ctx is done or [Watcher.Stop] is called.
// A missing parent directory is created so a file produced by a later
// build is still seen.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errors.New("watch: watcher stopped")
	}
	if w.running {
		return nil
	}

	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.logger.Debug("watching directory", zap.String("dir", dir))
	}

	w.running = true
	go w.run(ctx)
	return nil
}

// Stop ends watching and waits for an in-flight handler to return.
// It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	running := w.running
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-w.doneCh
	}
	if err := w.fsw.Close(); err != nil {
		w.logger.Warn("close watcher", zap.Error(err))
	}
}

// Done is closed when event handling has ended.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 3
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		case now := <-ticker.C:
			w.flush(ctx, now)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
		return
	}
	// Removal is followed by a create when a file is replaced; chmod alone
	// never changes content.
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	w.logger.Debug("file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
	w.pending[filepath.Clean(event.Name)] = time.Now()
}

func (w *Watcher) flush(ctx context.Context, now time.Time) {
	var ready []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	for _, path := range ready {
		if ctx.Err() != nil {
			return
		}
		w.handler(ctx, path)
	}
}
