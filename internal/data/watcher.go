// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package data

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// FILE WATCHER
// =============================================================================

// DefaultWatchInterval is the minimum gap between change notifications.
const DefaultWatchInterval = 500 * time.Millisecond

// Watcher notifies about external modifications to a CSV source file.
// Editors often produce bursts of write events per save; notifications
// are throttled so one save yields one reload.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	limiter *rate.Limiter
	events  chan struct{}
	done    chan struct{}
}

// WatchFile watches path for modifications. The parent directory is
// watched rather than the file itself, so atomic save-and-rename
// editors keep triggering events.
func WatchFile(path string, minInterval time.Duration) (*Watcher, error) {
	if minInterval <= 0 {
		minInterval = DefaultWatchInterval
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		path:    abs,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers one signal per (throttled) modification of the file.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

// run filters directory events down to the watched file and throttles
// the notification stream.
func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			evAbs, err := filepath.Abs(ev.Name)
			if err != nil || evAbs != w.path {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
				// A reload is already pending
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}
