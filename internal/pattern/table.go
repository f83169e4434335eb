package pattern

import (
	"fmt"
	"sort"
	"sync"
)

// Table collects patterns during extraction. It is safe for concurrent
// Add calls and must be frozen before any lookups happen: extraction
// writes, resolution reads, never both at once.
type Table struct {
	mu     sync.Mutex
	byID   map[ID]*Pattern
	order  []*Pattern
	frozen bool
}

// NewTable creates an empty pattern table
func NewTable() *Table {
	return &Table{
		byID: make(map[ID]*Pattern),
	}
}

// Add inserts a pattern into the table. If the ID is already taken the
// prior occupant is returned and the new pattern is not inserted, so
// the first occurrence in scan order wins.
func (t *Table) Add(p *Pattern) (*Pattern, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return nil, fmt.Errorf("pattern table is frozen")
	}

	if prior, ok := t.byID[p.ID]; ok {
		return prior, nil
	}

	t.byID[p.ID] = p
	t.order = append(t.order, p)
	return nil, nil
}

// Freeze converts the table into an immutable snapshot. Further Add
// calls fail; the snapshot needs no locking.
func (t *Table) Freeze() *Frozen {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.frozen = true

	byID := make(map[ID]*Pattern, len(t.byID))
	for id, p := range t.byID {
		byID[id] = p
	}
	order := make([]*Pattern, len(t.order))
	copy(order, t.order)

	return &Frozen{byID: byID, order: order}
}

// Frozen is a read-only view of a fully built pattern table
type Frozen struct {
	byID  map[ID]*Pattern
	order []*Pattern
}

// Lookup returns the pattern with the given ID, if present
func (f *Frozen) Lookup(id ID) (*Pattern, bool) {
	p, ok := f.byID[id]
	return p, ok
}

// Len returns the number of patterns in the table
func (f *Frozen) Len() int {
	return len(f.order)
}

// Patterns returns all patterns in insertion order
func (f *Frozen) Patterns() []*Pattern {
	return f.order
}

// ByPrefix groups patterns by prefix, each group sorted by number
func (f *Frozen) ByPrefix() map[string][]*Pattern {
	groups := make(map[string][]*Pattern)
	for _, p := range f.order {
		groups[p.ID.Prefix] = append(groups[p.ID.Prefix], p)
	}
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].ID.Number < group[j].ID.Number
		})
	}
	return groups
}
