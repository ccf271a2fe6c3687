// Package watch reruns the generator when the vocabulary file or the page
// template changes on disk.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/skosdoc/config"
)

const defaultDebounce = 500 * time.Millisecond

// RebuildFunc regenerates the outputs. Errors are logged and watching continues.
type RebuildFunc func(ctx context.Context) error

// Watcher watches the directories of a set of files and triggers rebuilds
// for changes whose base name matches a pattern.
type Watcher struct {
	patterns []string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	// targets are always relevant, whatever the patterns say
	targets map[string]bool
	// ignored are files written by the rebuild itself
	ignored map[string]bool

	pending map[string]fsnotify.Op
	hashes  map[string]string
}

// New creates a watcher for the directories containing targets. Changes to
// files in ignored never trigger a rebuild.
func New(cfg config.WatchConfig, targets, ignored []string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, p := range cfg.Patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid watch pattern %q", p)
		}
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		patterns: cfg.Patterns,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
		targets:  make(map[string]bool),
		ignored:  make(map[string]bool),
		pending:  make(map[string]fsnotify.Op),
		hashes:   make(map[string]string),
	}

	dirs := make(map[string]bool)
	for _, path := range targets {
		if path == "" {
			continue
		}
		abs := absPath(path)
		w.targets[abs] = true
		w.hashes[abs], _ = fileHash(abs)
		dirs[filepath.Dir(abs)] = true
	}
	for _, path := range ignored {
		if path != "" {
			w.ignored[absPath(path)] = true
		}
	}

	sorted := make([]string, 0, len(dirs))
	for dir := range dirs {
		sorted = append(sorted, dir)
	}
	sort.Strings(sorted)
	for _, dir := range sorted {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		w.logger.Debug("Watching directory", "path", dir)
	}

	return w, nil
}

// Run processes file events until ctx is cancelled, calling rebuild once per
// debounce window in which a relevant file changed content.
func (w *Watcher) Run(ctx context.Context, rebuild RebuildFunc) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	w.logger.Info("Watching for changes",
		"patterns", w.patterns,
		"debounce", w.debounce)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			changed := w.flushPending()
			if len(changed) == 0 {
				continue
			}
			w.logger.Info("Change detected, regenerating", "files", changed)
			if err := rebuild(ctx); err != nil {
				w.logger.Error("Regeneration failed", "error", err)
			}
		}
	}
}

// Relevant reports whether a change to path should trigger a rebuild.
func (w *Watcher) Relevant(path string) bool {
	abs := absPath(path)
	if w.ignored[abs] {
		return false
	}
	if w.targets[abs] {
		return true
	}
	base := filepath.Base(abs)
	for _, p := range w.patterns {
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.Relevant(event.Name) {
		return
	}
	w.pending[absPath(event.Name)] = event.Op
	w.logger.Debug("File change detected", "path", event.Name, "op", event.Op.String())
}

// flushPending returns the pending files whose content actually changed.
func (w *Watcher) flushPending() []string {
	if len(w.pending) == 0 {
		return nil
	}

	var changed []string
	for path, op := range w.pending {
		hash, err := fileHash(path)
		if err != nil {
			// Removed or mid-rename; the following create event is what counts.
			w.logger.Debug("Skipping unreadable file", "path", path, "op", op.String(), "error", err)
			delete(w.hashes, path)
			continue
		}
		if old, ok := w.hashes[path]; ok && old == hash {
			continue
		}
		w.hashes[path] = hash
		changed = append(changed, path)
	}
	w.pending = make(map[string]fsnotify.Op)

	sort.Strings(changed)
	return changed
}

func fileHash(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
