// Package cache provides content-hash keyed caching of extraction
// results so watch mode only re-scans files that actually changed.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/guidelint/guidelint/internal/extract"
)

// HashContent computes a SHA-256 hash of the given content
func HashContent(content []byte) string {
	hasher := sha256.New()
	hasher.Write(content)
	return hex.EncodeToString(hasher.Sum(nil))
}

// Entry is a cached extraction result with metadata
type Entry struct {
	Result   extract.Result
	Hash     string
	Path     string
	CachedAt time.Time
}

// ExtractionCache stores extraction results per file path, keyed by
// content hash for validity checks
type ExtractionCache struct {
	entries map[string]*Entry
	mu      sync.RWMutex
}

// New creates an empty extraction cache
func New() *ExtractionCache {
	return &ExtractionCache{
		entries: make(map[string]*Entry),
	}
}

// Get returns the cached result for a path if the content hash still
// matches
func (c *ExtractionCache) Get(path, hash string) (extract.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[path]
	if !ok || entry.Hash != hash {
		return extract.Result{}, false
	}
	return entry.Result, true
}

// Set stores an extraction result for a path
func (c *ExtractionCache) Set(path, hash string, result extract.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = &Entry{
		Result:   result,
		Hash:     hash,
		Path:     path,
		CachedAt: time.Now(),
	}
}

// Invalidate removes an entry from the cache
func (c *ExtractionCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
}

// Len returns the number of cached entries
func (c *ExtractionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
