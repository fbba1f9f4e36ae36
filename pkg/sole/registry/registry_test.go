package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEntry is a minimal Entry for table tests.
type fakeEntry struct {
	name string
	id   string
}

func (e *fakeEntry) Name() string { return e.name }
func (e *fakeEntry) ID() string   { return e.id }

func TestNew(t *testing.T) {
	table := New()
	assert.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
}

func TestAddAndGet(t *testing.T) {
	table := New()
	entry := &fakeEntry{name: "clock", id: "id-1"}

	require.NoError(t, table.Add(entry))

	got, ok := table.Get("clock")
	assert.True(t, ok)
	assert.Same(t, entry, got)

	_, ok = table.Get("missing")
	assert.False(t, ok)
}

func TestAddDuplicate(t *testing.T) {
	table := New()
	first := &fakeEntry{name: "clock", id: "id-1"}
	second := &fakeEntry{name: "clock", id: "id-2"}

	require.NoError(t, table.Add(first))
	err := table.Add(second)
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	// The original entry stays in place.
	got, ok := table.Get("clock")
	assert.True(t, ok)
	assert.Same(t, first, got)
}

func TestHas(t *testing.T) {
	table := New()
	require.NoError(t, table.Add(&fakeEntry{name: "clock"}))

	assert.True(t, table.Has("clock"))
	assert.False(t, table.Has("missing"))
}

func TestRemove(t *testing.T) {
	table := New()
	require.NoError(t, table.Add(&fakeEntry{name: "clock"}))

	assert.True(t, table.Remove("clock"))
	assert.False(t, table.Has("clock"))
	assert.False(t, table.Remove("clock"))
}

func TestRemoveAllowsReAdd(t *testing.T) {
	table := New()
	require.NoError(t, table.Add(&fakeEntry{name: "clock", id: "id-1"}))
	table.Remove("clock")

	assert.NoError(t, table.Add(&fakeEntry{name: "clock", id: "id-2"}))
}

func TestNamesAndLen(t *testing.T) {
	table := New()
	require.NoError(t, table.Add(&fakeEntry{name: "a"}))
	require.NoError(t, table.Add(&fakeEntry{name: "b"}))

	assert.Equal(t, 2, table.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, table.Names())
}

func TestRange(t *testing.T) {
	table := New()
	require.NoError(t, table.Add(&fakeEntry{name: "a"}))
	require.NoError(t, table.Add(&fakeEntry{name: "b"}))
	require.NoError(t, table.Add(&fakeEntry{name: "c"}))

	seen := make(map[string]bool)
	table.Range(func(e Entry) bool {
		seen[e.Name()] = true
		return true
	})
	assert.Len(t, seen, 3)
}

func TestRangeEarlyStop(t *testing.T) {
	table := New()
	require.NoError(t, table.Add(&fakeEntry{name: "a"}))
	require.NoError(t, table.Add(&fakeEntry{name: "b"}))

	count := 0
	table.Range(func(Entry) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestRangeMutationSafe(t *testing.T) {
	table := New()
	require.NoError(t, table.Add(&fakeEntry{name: "a"}))
	require.NoError(t, table.Add(&fakeEntry{name: "b"}))

	table.Range(func(e Entry) bool {
		table.Remove(e.Name())
		return true
	})
	assert.Equal(t, 0, table.Len())
}

func TestDefaultIsProcessWide(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestConcurrentAddRemove(t *testing.T) {
	table := New()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("entry-%d", i)
			assert.NoError(t, table.Add(&fakeEntry{name: name}))
			_, ok := table.Get(name)
			assert.True(t, ok)
			assert.True(t, table.Remove(name))
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, table.Len())
}
