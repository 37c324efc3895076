// Package watcher reloads the config file whenever it changes on disk.
// Every reload yields a new *config.Config; values handed out earlier are
// never touched.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/4lbatr0s/sitemeta/config"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const DefaultDebounce = 200 * time.Millisecond

// OnLoad receives the result of every reload. Exactly one of cfg and err
// is nil.
type OnLoad func(cfg *config.Config, err error)

type Watcher struct {
	path     string
	debounce time.Duration
	onLoad   OnLoad
	watcher  *fsnotify.Watcher
	last     string
}

// New starts watching the directory holding path and remembers the current
// state of the file. A file that does not load yet is reported to onLoad
// before New returns. Editors often replace files instead of writing them,
// so the file itself is not watched. The returned Watcher must be Run to
// release its resources.
func New(path string, debounce time.Duration, onLoad OnLoad) (*Watcher, error) {
	if onLoad == nil {
		return nil, fmt.Errorf("onLoad callback cannot be nil")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		onLoad:   onLoad,
		watcher:  fw,
	}
	cfg, err := config.Load(abs)
	if err != nil {
		onLoad(nil, err)
	} else {
		w.last, _ = config.Fingerprint(cfg)
	}
	return w, nil
}

// Watch is New followed by Run with the default debounce.
func Watch(ctx context.Context, path string, onLoad OnLoad) error {
	w, err := New(path, DefaultDebounce, onLoad)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// Run blocks until ctx is cancelled. Bursts of events closer than the
// debounce interval produce a single reload, and reloads that leave the
// configuration unchanged are not reported.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	log.Logger.Info().Str("path", w.path).Msg("Watching configuration")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Logger.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("config file event")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Logger.Error().Err(err).Str("path", w.path).Msg("config watcher error")
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := config.Load(w.path)
	if err != nil {
		w.last = ""
		w.onLoad(nil, err)
		return
	}
	fp, err := config.Fingerprint(cfg)
	if err == nil && fp == w.last {
		log.Logger.Debug().Str("path", w.path).Msg("configuration unchanged")
		return
	}
	w.last = fp
	w.onLoad(cfg, nil)
}
