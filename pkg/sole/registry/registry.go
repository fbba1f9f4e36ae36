package registry

import (
	"errors"
	"sync"
)

// ErrDuplicateEntry indicates an Add with a name that is already registered.
var ErrDuplicateEntry = errors.New("registry: entry already exists")

// Entry is a type registration record. *sole.Type implements it.
type Entry interface {
	// Name returns the unique registration name.
	Name() string
	// ID returns the stable registration identifier.
	ID() string
}

// Table is a thread-safe registration table mapping type names to their
// registration records. It uses sync.RWMutex for read-heavy lookup workloads.
type Table struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates a new empty table.
func New() *Table {
	return &Table{
		entries: make(map[string]Entry),
	}
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the process-wide table, creating it on first use.
// The table lives for the process lifetime; entries are removed only
// through explicit Remove calls.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New()
	})
	return defaultTable
}

// Add registers an entry under its name. Registering a name that already
// exists returns ErrDuplicateEntry and leaves the existing entry in place.
func (t *Table) Add(e Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[e.Name()]; ok {
		return ErrDuplicateEntry
	}
	t.entries[e.Name()] = e
	return nil
}

// Get returns the entry for a name and whether it exists.
func (t *Table) Get(name string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[name]
	return e, ok
}

// Has returns true if the name is registered.
func (t *Table) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[name]
	return ok
}

// Remove deletes a registration by name and reports whether it existed.
func (t *Table) Remove(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[name]
	delete(t.entries, name)
	return ok
}

// Names returns all registered names. The order is not guaranteed.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registrations.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Range iterates over all registrations. The function fn is called for
// each entry. If fn returns false, iteration stops.
//
// Range iterates over a snapshot of the table, so it is safe to call Add
// or Remove during iteration without affecting the current iteration.
func (t *Table) Range(fn func(Entry) bool) {
	t.mu.RLock()
	snapshot := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		snapshot = append(snapshot, e)
	}
	t.mu.RUnlock()

	for _, e := range snapshot {
		if !fn(e) {
			return
		}
	}
}
