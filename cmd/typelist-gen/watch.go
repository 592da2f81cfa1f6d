package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"typelist/internal/mapping"
)

// settle is how long watch waits for a burst of events to end.
const settle = 200 * time.Millisecond

func (a *app) cmdWatch(ctx context.Context, args []string) int {
	f, err := a.parseGenFlags("watch", args)
	if err != nil {
		return 2
	}

	if err := a.watch(ctx, f); err != nil && !errors.Is(err, context.Canceled) {
		return a.fail(err)
	}

	return 0
}

// watch regenerates whenever the config or a Go file of a configured package
// changes. Generation errors are reported and watching goes on.
func (a *app) watch(ctx context.Context, f *genFlags) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	defer func() {
		_ = w.Close()
	}()

	outputs, err := a.addWatches(w, f.config)
	if err != nil {
		return err
	}

	a.regenerate(ctx, f)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !relevant(ev, f.config, outputs) {
				continue
			}

			a.log.Debug("change", "file", ev.Name, "op", ev.Op.String())

			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}

			pending = timer.C

		case <-pending:
			pending = nil

			// The config may name other packages now.
			if outputs, err = a.addWatches(w, f.config); err != nil {
				a.log.Error("reading config", "err", err)
				continue
			}

			a.regenerate(ctx, f)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			a.log.Warn("watch error", "err", err)
		}
	}
}

func (a *app) regenerate(ctx context.Context, f *genFlags) {
	if err := a.genOnce(ctx, f); err != nil && !errors.Is(err, errDiagnostics) {
		a.log.Error("generation failed", "err", err)
	}
}

// addWatches watches the directory of the config and of every configured
// package, and returns the generated files to ignore.
func (a *app) addWatches(w *fsnotify.Watcher, config string) (map[string]bool, error) {
	file, err := mapping.LoadFile(config)
	if err != nil {
		return nil, err
	}

	dirs := []string{filepath.Dir(config)}
	outputs := make(map[string]bool)

	for _, p := range file.Packages {
		dir := p.Dir(file.BaseDir)
		dirs = append(dirs, dir)
		outputs[filepath.Clean(filepath.Join(dir, p.Output))] = true
	}

	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return nil, err
		}
	}

	return outputs, nil
}

func relevant(ev fsnotify.Event, config string, outputs map[string]bool) bool {
	name := filepath.Clean(ev.Name)

	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	if name == filepath.Clean(config) {
		return true
	}

	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") && !outputs[name]
}
