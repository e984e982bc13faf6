// File: watcher.go
// Title: Source File Watcher
// Description: Watches a file or directory tree for changes to hasty
//              sources and reports each changed file once it has been
//              quiet for the debounce window.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-06
// Modified: 2025-03-14
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation
// - 2025-03-14 v0.1.1: Dispatch after a burst ends instead of on its first event

// Package watcher reports changed source files to a callback.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/hasty/foundation/core/error"
	mdwlog "github.com/msto63/hasty/foundation/core/log"
)

// Handler is called with the path of a changed source file
type Handler func(path string)

// Options configures a Watcher
type Options struct {
	// Extensions lists accepted file extensions including the dot
	Extensions []string
	// Debounce delays dispatch until a file saw no event for this long
	Debounce time.Duration
	// Recursive watches subdirectories, including ones created later
	Recursive bool
	Logger    *mdwlog.Logger
}

// timer is the part of *time.Timer the watcher uses
type timer interface {
	Reset(d time.Duration) bool
	Stop() bool
}

// Watcher watches one file or directory
type Watcher struct {
	root    string
	single  bool
	handler Handler
	opts    Options
	logger  *mdwlog.Logger

	// pending holds one timer per file with an undispatched change. It is
	// only touched by the goroutine running the event loop.
	pending  map[string]timer
	fired    chan string
	stop     chan struct{}
	schedule func(d time.Duration, fn func()) timer
}

// New creates a watcher for root, which may be a file or a directory
func New(root string, handler Handler, opts Options) *Watcher {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	root = filepath.Clean(root)
	return &Watcher{
		root:     root,
		handler:  handler,
		opts:     opts,
		logger:   opts.Logger.WithFields(mdwlog.Fields{"component": "hasty-watcher", "root": root}),
		pending:  make(map[string]timer),
		fired:    make(chan string, 16),
		stop:     make(chan struct{}),
		schedule: afterFunc,
	}
}

func afterFunc(d time.Duration, fn func()) timer {
	return time.AfterFunc(d, fn)
}

// Files lists the source files currently under the root, sorted
func (w *Watcher) Files() ([]string, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, w.wrap(err, "cannot stat watch root")
	}
	if !info.IsDir() {
		return []string{w.root}, nil
	}

	var files []string
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != w.root && !w.opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if w.accepts(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, w.wrap(err, "cannot list sources")
	}
	sort.Strings(files)
	return files, nil
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
// A Watcher runs at most once.
func (w *Watcher) Run(ctx context.Context) error {
	info, err := os.Stat(w.root)
	if err != nil {
		return w.wrap(err, "cannot stat watch root")
	}
	w.single = !info.IsDir()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return w.wrap(err, "failed to create watcher")
	}
	defer fsw.Close()
	defer w.stopPending()

	if err := w.addDirs(fsw); err != nil {
		return err
	}

	w.logger.Info("Started watching for source changes", mdwlog.Field("recursive", w.opts.Recursive))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping source watcher")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.opts.Recursive && event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fsw.Add(event.Name); err != nil {
						w.logger.WarnWithErr("Cannot watch new directory", err, mdwlog.Field("dir", event.Name))
					}
					continue
				}
			}
			w.handleEvent(event)

		case path := <-w.fired:
			w.dispatch(path)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("Watcher error", err)
		}
	}
}

func (w *Watcher) addDirs(fsw *fsnotify.Watcher) error {
	if w.single {
		// Editors often replace files on save, which drops a watch on the
		// file itself, so the parent directory is watched instead.
		if err := fsw.Add(filepath.Dir(w.root)); err != nil {
			return w.wrap(err, "failed to watch directory")
		}
		return nil
	}

	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return w.wrap(err, "cannot walk watch root")
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && !w.opts.Recursive {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return w.wrap(err, "failed to watch directory")
		}
		return nil
	})
}

// handleEvent schedules a write or create of an accepted file for
// dispatch. Each further event for the same file restarts its window, so
// the handler runs once the burst is over and sees the final content.
// Without a debounce window the handler runs immediately. It reports
// whether the event was accepted.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}

	path := filepath.Clean(event.Name)
	if w.single && path != w.root {
		return false
	}
	if !w.accepts(path) {
		return false
	}

	w.logger.Debug("Source changed", mdwlog.Fields{
		"file": path,
		"op":   event.Op.String(),
	})

	if w.opts.Debounce <= 0 {
		w.handler(path)
		return true
	}

	if t, ok := w.pending[path]; ok {
		t.Reset(w.opts.Debounce)
		return true
	}
	w.pending[path] = w.schedule(w.opts.Debounce, func() {
		select {
		case w.fired <- path:
		case <-w.stop:
		}
	})
	return true
}

// dispatch runs the handler for a file whose window expired. A timer that
// fired after its file was already dispatched finds nothing pending.
func (w *Watcher) dispatch(path string) bool {
	if _, ok := w.pending[path]; !ok {
		return false
	}
	delete(w.pending, path)
	w.handler(path)
	return true
}

func (w *Watcher) stopPending() {
	close(w.stop)
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

// accepts reports whether path has one of the configured extensions.
// Without extensions every file is accepted.
func (w *Watcher) accepts(path string) bool {
	if len(w.opts.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range w.opts.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func (w *Watcher) wrap(err error, message string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeWatchError).
		WithOperation("watcher").
		WithDetail("root", w.root)
}
