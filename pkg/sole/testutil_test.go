package sole

import (
	"sync/atomic"
	"testing"
)

// Test instance types used across tests

// Widget is a plain instance with no identity of its own.
type Widget struct {
	Label string
}

// Session is a keyed instance that carries its own key for release.
type Session struct {
	Key string
}

// testName returns a registration name unique to the test and removes
// the registration when the test ends. The registry is process-wide, so
// every test must use its own names.
func testName(t *testing.T, suffix string) string {
	t.Helper()
	name := t.Name()
	if suffix != "" {
		name += "/" + suffix
	}
	t.Cleanup(func() { Undefine(name) })
	return name
}

// countingAlloc returns a Widget allocator that counts invocations.
func countingAlloc(count *atomic.Int64) AllocFunc[*Widget, NoArgs] {
	return func(NoArgs) (*Widget, error) {
		count.Add(1)
		return &Widget{}, nil
	}
}

// countingInit returns an initializer that counts invocations.
func countingInit(count *atomic.Int64) InitFunc[*Widget, NoArgs] {
	return func(*Widget, NoArgs) error {
		count.Add(1)
		return nil
	}
}

// sessionStrategy returns a keyed strategy mapping each key string to
// its own Session.
func sessionStrategy() *Keyed[*Session, string, string] {
	return NewKeyed[*Session, string, string](
		func(key string) string { return key },
		func(s *Session) string { return s.Key },
	)
}

// allocSession allocates a Session carrying its key.
func allocSession(key string) (*Session, error) {
	return &Session{Key: key}, nil
}
