package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// DefaultInclude selects every Markdown file under the root
var DefaultInclude = []string{"**/*.md"}

// Options configures corpus loading
type Options struct {
	// Include and Exclude are doublestar globs matched against the
	// slash-separated path relative to the root. An empty Include
	// defaults to DefaultInclude.
	Include []string
	Exclude []string

	// Concurrency bounds parallel file reads. Zero means GOMAXPROCS.
	Concurrency int
}

// ReadFailure records a file that matched the selection but could not
// be read. The rest of the corpus still loads.
type ReadFailure struct {
	Path string
	Err  error
}

// Load reads all selected files under root in deterministic lexicographic
// order by relative path. It fails outright only when the root itself is
// missing or not a directory; individual unreadable files are returned as
// ReadFailures alongside the documents that did load.
func Load(root string, opts Options) ([]*Document, []ReadFailure, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read corpus root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("corpus root %s is not a directory", root)
	}

	paths, err := selectPaths(root, opts)
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(paths)

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	// Reads are parallel but land in a position-indexed slice so the
	// output order stays deterministic.
	docs := make([]*Document, len(paths))
	var (
		mu       sync.Mutex
		failures []ReadFailure
	)

	var g errgroup.Group
	g.SetLimit(limit)

	for i, relPath := range paths {
		i, relPath := i, relPath
		g.Go(func() error {
			content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
			if err != nil {
				mu.Lock()
				failures = append(failures, ReadFailure{Path: relPath, Err: err})
				mu.Unlock()
				return nil
			}

			doc := &Document{Path: relPath, Content: string(content)}
			doc.applyFrontmatter()
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	loaded := make([]*Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			loaded = append(loaded, doc)
		}
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].Path < failures[j].Path })

	return loaded, failures, nil
}

// selectPaths walks the root and returns relative slash paths of files
// matching the include globs and none of the exclude globs
func selectPaths(root string, opts Options) ([]string, error) {
	include := opts.Include
	if len(include) == 0 {
		include = DefaultInclude
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectories are skipped, not fatal
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matchAny(include, rel) && !matchAny(opts.Exclude, rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk corpus root: %w", err)
	}

	return paths, nil
}

func matchAny(globs []string, path string) bool {
	for _, glob := range globs {
		if ok, err := doublestar.Match(glob, path); err == nil && ok {
			return true
		}
	}
	return false
}
