// Package watch re-runs corpus checks when Markdown files change.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/guidelint/guidelint/internal/cache"
)

// CorpusWatcher monitors a corpus root and triggers a callback after
// file changes settle
type CorpusWatcher struct {
	root      string
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	cache     *cache.ExtractionCache
	logger    *zap.Logger
	onChange  func([]string) error
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// NewCorpusWatcher creates a watcher over the given root. The extraction
// cache, when set, is invalidated for changed files before the callback
// runs so the next check re-scans only those files.
func NewCorpusWatcher(root string, ec *cache.ExtractionCache, logger *zap.Logger, onChange func([]string) error) (*CorpusWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	cw := &CorpusWatcher{
		root:      root,
		watcher:   watcher,
		debouncer: NewDebouncer(200 * time.Millisecond),
		cache:     ec,
		logger:    logger,
		onChange:  onChange,
		stopChan:  make(chan struct{}),
	}

	cw.debouncer.SetCallback(func(files []string) {
		if err := cw.onChange(files); err != nil {
			cw.logger.Warn("change handler failed", zap.Error(err))
		}
	})

	return cw, nil
}

// Start begins watching the corpus root and its subdirectories
func (cw *CorpusWatcher) Start() error {
	dirs, err := cw.findDirectories()
	if err != nil {
		return fmt.Errorf("failed to find directories: %w", err)
	}

	for _, dir := range dirs {
		if err := cw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		cw.logger.Debug("watching directory", zap.String("dir", dir))
	}

	cw.wg.Add(1)
	go cw.watch()

	return nil
}

// Stop stops the watcher
func (cw *CorpusWatcher) Stop() error {
	select {
	case <-cw.stopChan:
		return nil
	default:
		close(cw.stopChan)
	}

	cw.wg.Wait()
	cw.debouncer.Stop()
	return cw.watcher.Close()
}

// watch is the main event loop
func (cw *CorpusWatcher) watch() {
	defer cw.wg.Done()

	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}

			if cw.shouldIgnore(event.Name) {
				continue
			}

			// fsnotify does not recurse: new directories join the
			// watch set as they appear
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = cw.watcher.Add(event.Name)
					continue
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if cw.isMarkdown(event.Name) {
					cw.logger.Debug("file changed", zap.String("file", event.Name))
					cw.invalidate(event.Name)
					cw.debouncer.Add(event.Name)
				}
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Warn("watch error", zap.Error(err))

		case <-cw.stopChan:
			return
		}
	}
}

// invalidate drops the changed file from the extraction cache
func (cw *CorpusWatcher) invalidate(path string) {
	if cw.cache == nil {
		return
	}
	if rel, err := filepath.Rel(cw.root, path); err == nil {
		cw.cache.Invalidate(filepath.ToSlash(rel))
	}
}

// findDirectories discovers all directories under the root to watch
func (cw *CorpusWatcher) findDirectories() ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(cw.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != cw.root && cw.shouldIgnore(path) {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dirs, nil
}

// shouldIgnore filters out hidden files and editor artifacts
func (cw *CorpusWatcher) shouldIgnore(path string) bool {
	baseName := filepath.Base(path)
	if baseName != "." && strings.HasPrefix(baseName, ".") {
		return true
	}

	for _, pattern := range []string{"*.swp", "*.swo", "*~"} {
		if matched, _ := filepath.Match(pattern, baseName); matched {
			return true
		}
	}

	return false
}

// isMarkdown reports whether the file is part of the corpus
func (cw *CorpusWatcher) isMarkdown(path string) bool {
	return filepath.Ext(path) == ".md"
}
