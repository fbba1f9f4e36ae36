package sole

import (
	"sync"
	"sync/atomic"
)

// Strategy defines the identity domain for a singleton type: how many
// distinct instances may exist and what distinguishes them.
//
// Resolve is called on the unlocked fast path as well as under the type
// lock, so its reads must tolerate concurrent lock-free inspection while
// another goroutine mutates under the lock. Record is always called with
// the type lock held. Release is called without the lock unless the type
// was defined with WithStrictRelease.
type Strategy[T, A any] interface {
	// Resolve returns the existing instance for the identity implied by
	// args, or false if none is recorded.
	Resolve(args A) (T, bool)

	// Record stores inst as the singleton for the identity implied by args.
	Record(inst T, args A)

	// Release removes inst's identity from the recorded index. The
	// instance itself is not destroyed; external references stay valid.
	Release(inst T)
}

// StrategyKind distinguishes the installed default strategy from a
// type-supplied one. Resolved once at definition time.
type StrategyKind string

const (
	// StrategyDefault is the single-slot-per-type strategy installed when
	// a type supplies no hooks.
	StrategyDefault StrategyKind = "default"

	// StrategyCustom is a type-supplied strategy, either a Strategy value
	// or a complete set of the three hooks.
	StrategyCustom StrategyKind = "custom"
)

// String returns the string representation of the strategy kind.
func (k StrategyKind) String() string {
	return string(k)
}

// slotBox wraps an instance so the slot can distinguish "absent" from a
// recorded zero value.
type slotBox[T any] struct {
	inst T
}

// slotStrategy is the default strategy: one slot per defined type, holding
// either absent or one instance. Arguments are ignored entirely; default
// keying is one instance of this type, full stop.
//
// The slot is a single atomic pointer, so the unlocked fast-path read is
// safe against a concurrent Record under the lock.
type slotStrategy[T, A any] struct {
	ref atomic.Pointer[slotBox[T]]
}

// Resolve returns the current slot value.
func (s *slotStrategy[T, A]) Resolve(_ A) (T, bool) {
	b := s.ref.Load()
	if b == nil {
		var zero T
		return zero, false
	}
	return b.inst, true
}

// Record overwrites the slot with inst.
func (s *slotStrategy[T, A]) Record(inst T, _ A) {
	s.ref.Store(&slotBox[T]{inst: inst})
}

// Release clears the slot, regardless of which instance is stored.
// Callers are expected to only release their own instance; identity is
// not verified.
func (s *slotStrategy[T, A]) Release(_ T) {
	s.ref.Store(nil)
}

// hookStrategy assembles the three individually-supplied hooks into a
// Strategy. Define validates that all three are present.
type hookStrategy[T, A any] struct {
	resolve func(A) (T, bool)
	record  func(T, A)
	release func(T)
}

func (s *hookStrategy[T, A]) Resolve(args A) (T, bool) { return s.resolve(args) }
func (s *hookStrategy[T, A]) Record(inst T, args A)    { s.record(inst, args) }
func (s *hookStrategy[T, A]) Release(inst T)           { s.release(inst) }

// Keyed maintains one instance per key, where the key is derived from the
// construction arguments on Resolve and Record, and from the instance
// itself on Release. This is the object-per-unique-arguments pattern.
//
// The backing sync.Map tolerates lock-free reads on the obtain fast path.
// Note the type lock is still per type, not per key: first constructions
// of distinct keys serialize during the locked phase.
type Keyed[T, A any, K comparable] struct {
	argKey  func(A) K
	instKey func(T) K
	entries sync.Map // K -> T
}

// NewKeyed creates a keyed strategy. argKey derives the identity key from
// the construction arguments; instKey derives the same key from a
// constructed instance so Release can find its entry.
func NewKeyed[T, A any, K comparable](argKey func(A) K, instKey func(T) K) *Keyed[T, A, K] {
	return &Keyed[T, A, K]{
		argKey:  argKey,
		instKey: instKey,
	}
}

// Resolve returns the instance recorded for the key implied by args.
func (s *Keyed[T, A, K]) Resolve(args A) (T, bool) {
	v, ok := s.entries.Load(s.argKey(args))
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Record stores inst under the key implied by args.
func (s *Keyed[T, A, K]) Record(inst T, args A) {
	s.entries.Store(s.argKey(args), inst)
}

// Release removes the entry for inst's own key, leaving other keys intact.
func (s *Keyed[T, A, K]) Release(inst T) {
	s.entries.Delete(s.instKey(inst))
}

// Len returns the number of recorded instances.
func (s *Keyed[T, A, K]) Len() int {
	n := 0
	s.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Shared is a single slot meant to be passed to several Define calls so
// that all of them pool into one instance. Whichever type constructs
// first wins; every pooled type resolves to that instance until Release.
//
// T is typically an interface implemented by each pooled concrete type.
type Shared[T, A any] struct {
	ref atomic.Pointer[slotBox[T]]
}

// NewShared creates a shared-slot strategy.
func NewShared[T, A any]() *Shared[T, A] {
	return &Shared[T, A]{}
}

// Resolve returns the shared slot value.
func (s *Shared[T, A]) Resolve(_ A) (T, bool) {
	b := s.ref.Load()
	if b == nil {
		var zero T
		return zero, false
	}
	return b.inst, true
}

// Record overwrites the shared slot with inst.
func (s *Shared[T, A]) Record(inst T, _ A) {
	s.ref.Store(&slotBox[T]{inst: inst})
}

// Release clears the shared slot for every pooled type.
func (s *Shared[T, A]) Release(_ T) {
	s.ref.Store(nil)
}
