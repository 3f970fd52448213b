package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/repogen/compiler/load"
)

// debounce is how long the watcher waits after the last change before
// regenerating, so editor save bursts trigger one run.
const debounce = 300 * time.Millisecond

// watchAndRun regenerates whenever a Go source file in a watched contract
// package changes. It blocks until the context is canceled or the watcher
// fails.
func watchAndRun(ctx context.Context, cfg *fileConfig) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs, err := contractDirs(cfg)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	fmt.Printf("repogen: watching %d directories\n", len(dirs))

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevantChange(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "repogen: watch error: %v\n", err)
		case <-pending:
			if err := run(ctx, cfg); err != nil {
				// Keep watching; broken intermediate states are expected
				// while the user edits.
				fmt.Fprintf(os.Stderr, "repogen: %v\n", err)
			}
		}
	}
}

// relevantChange reports whether the event warrants a regeneration run.
// Generated output changing must not retrigger the watcher.
func relevantChange(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return false
	}
	return !strings.HasSuffix(strings.TrimSuffix(name, ".go"), "_impl")
}

// contractDirs resolves the configured patterns to the source directories
// of the packages declaring contracts.
func contractDirs(cfg *fileConfig) ([]string, error) {
	contracts, err := (&load.Config{
		Patterns: cfg.Patterns,
		Names:    cfg.Names,
	}).Load()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var dirs []string
	for _, c := range contracts {
		if _, ok := seen[c.Dir]; ok {
			continue
		}
		seen[c.Dir] = struct{}{}
		dirs = append(dirs, c.Dir)
	}
	return dirs, nil
}
