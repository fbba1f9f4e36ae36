package sole

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/sole/pkg/sole/observability"
	"github.com/randalmurphal/sole/pkg/sole/registry"
)

// NoArgs is the argument type for types whose constructor takes nothing.
type NoArgs struct{}

// AllocFunc allocates a new, uninitialized instance. It receives the
// caller's construction arguments exactly as passed to Obtain.
type AllocFunc[T, A any] func(args A) (T, error)

// InitFunc initializes an allocated instance. It receives the same
// arguments as the allocation step, unmodified.
type InitFunc[T, A any] func(inst T, args A) error

// Type is a singleton type registration: the per-type lock, the resolved
// key-resolution strategy, and the construction functions. Created once by
// Define and shared freely between goroutines; all methods are safe for
// concurrent use.
type Type[T, A any] struct {
	name string
	id   string
	kind StrategyKind

	mu       sync.Mutex
	strategy Strategy[T, A]
	alloc    AllocFunc[T, A]
	init     InitFunc[T, A]

	strictRelease bool
	logger        *slog.Logger
	metrics       observability.MetricsRecorder
	spans         observability.SpanManager
}

// Compile-time interface check.
var _ registry.Entry = (*Type[struct{}, NoArgs])(nil)

// Define creates a type registration and records it in the process-wide
// registry under name. The strategy is resolved once, here: no hooks
// installs the default single-slot strategy, all three hooks (or
// WithStrategy) install a custom one, and one or two hooks fail with an
// IncompleteStrategyError. Duplicate names fail with ErrDuplicateDefinition.
//
// alloc allocates the instance and init (optional, may be nil) initializes
// it; both receive the Obtain arguments unmodified. Together they run at
// most once per identity until a Release.
//
// Example:
//
//	dbType, err := sole.Define("database",
//	    func(dsn string) (*DB, error) { return &DB{dsn: dsn}, nil },
//	    func(db *DB, dsn string) error { return db.connect() },
//	)
func Define[T, A any](name string, alloc AllocFunc[T, A], init InitFunc[T, A], opts ...Option[T, A]) (*Type[T, A], error) {
	if name == "" {
		return nil, &DefineError{TypeName: name, Err: ErrEmptyName}
	}
	if alloc == nil {
		return nil, &DefineError{TypeName: name, Err: ErrNilAllocator}
	}

	cfg := defaultTypeConfig[T, A]()
	for _, opt := range opts {
		opt(&cfg)
	}

	strategy, kind, err := resolveStrategy(name, &cfg)
	if err != nil {
		return nil, err
	}

	t := &Type[T, A]{
		name:          name,
		id:            uuid.NewString(),
		kind:          kind,
		strategy:      strategy,
		alloc:         alloc,
		init:          init,
		strictRelease: cfg.strictRelease,
		logger:        cfg.logger,
		metrics:       cfg.metrics,
		spans:         cfg.spans,
	}

	if err := registry.Default().Add(t); err != nil {
		return nil, &DefineError{TypeName: name, Err: ErrDuplicateDefinition}
	}

	observability.LogDefine(t.logger, t.name, t.id, kind.String())
	return t, nil
}

// MustDefine is like Define but panics on error. Intended for package-level
// registrations where a definition error is a programming mistake.
func MustDefine[T, A any](name string, alloc AllocFunc[T, A], init InitFunc[T, A], opts ...Option[T, A]) *Type[T, A] {
	t, err := Define(name, alloc, init, opts...)
	if err != nil {
		panic(fmt.Sprintf("sole: %v", err))
	}
	return t
}

// Undefine removes a type registration by name and reports whether it
// existed. The registry has no implicit teardown; this is the explicit
// removal used by tests and controlled shutdown. Instances already handed
// out are unaffected.
func Undefine(name string) bool {
	return registry.Default().Remove(name)
}

// resolveStrategy validates the hook configuration and returns the
// strategy to install. All-or-none: a type defines every hook or no hook.
func resolveStrategy[T, A any](name string, cfg *typeConfig[T, A]) (Strategy[T, A], StrategyKind, error) {
	defined := make([]string, 0, 3)
	missing := make([]string, 0, 3)
	appendTo := func(ok bool, hook string) {
		if ok {
			defined = append(defined, hook)
		} else {
			missing = append(missing, hook)
		}
	}
	appendTo(cfg.resolve != nil, "resolve")
	appendTo(cfg.record != nil, "record")
	appendTo(cfg.release != nil, "release")

	if cfg.strategy != nil {
		if len(defined) > 0 {
			return nil, "", &DefineError{TypeName: name, Err: ErrConflictingStrategy}
		}
		return cfg.strategy, StrategyCustom, nil
	}

	switch len(defined) {
	case 0:
		return &slotStrategy[T, A]{}, StrategyDefault, nil
	case 3:
		return &hookStrategy[T, A]{
			resolve: cfg.resolve,
			record:  cfg.record,
			release: cfg.release,
		}, StrategyCustom, nil
	default:
		return nil, "", &IncompleteStrategyError{
			TypeName: name,
			Defined:  defined,
			Missing:  missing,
		}
	}
}

// Name returns the registration name.
func (t *Type[T, A]) Name() string {
	return t.name
}

// ID returns the stable registration identifier.
func (t *Type[T, A]) ID() string {
	return t.id
}

// Kind reports whether the type uses the default or a custom strategy.
func (t *Type[T, A]) Kind() StrategyKind {
	return t.kind
}

// StrictRelease reports whether Release takes the type lock.
func (t *Type[T, A]) StrictRelease() bool {
	return t.strictRelease
}

// Obtain returns the singleton instance for the identity implied by args,
// constructing it if none is recorded.
//
// The common case is a lock-free read: if the strategy resolves an
// instance, it is returned without taking the lock. On a miss the type
// lock is acquired, the strategy is consulted again, and only if the
// identity is still absent does allocation and initialization run, with
// the result recorded before the lock is released. Among goroutines
// racing for first construction, exactly one constructs; the rest observe
// its result after the record.
//
// Construction and strategy errors propagate unchanged, nothing is
// recorded for the identity, and the lock is released on every exit path;
// the next Obtain retries from scratch.
//
// ctx carries telemetry (span parentage, metric context) only; it does
// not cancel the lock wait.
func (t *Type[T, A]) Obtain(ctx context.Context, args A) (T, error) {
	if inst, ok := t.strategy.Resolve(args); ok {
		t.metrics.RecordObtain(ctx, t.name, true, nil)
		return inst, nil
	}

	ctx, span := t.spans.StartObtainSpan(ctx, t.name)
	inst, err := t.obtainSlow(ctx, args)
	t.spans.EndSpanWithError(span, err)
	t.metrics.RecordObtain(ctx, t.name, false, err)
	return inst, err
}

// obtainSlow is the locked phase: double-checked resolve, then construct
// and record. The deferred unlock covers error returns and panics from
// strategy hooks alike.
func (t *Type[T, A]) obtainSlow(ctx context.Context, args A) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if inst, ok := t.strategy.Resolve(args); ok {
		return inst, nil
	}

	constructID := uuid.NewString()
	_, span := t.spans.StartConstructSpan(ctx, t.name, constructID)
	start := time.Now()

	inst, err := t.alloc(args)
	if err == nil && t.init != nil {
		err = t.init(inst, args)
	}

	duration := time.Since(start)
	t.spans.EndSpanWithError(span, err)
	t.metrics.RecordConstruction(ctx, t.name, duration, err)

	if err != nil {
		observability.LogConstructError(t.logger, t.name, constructID, err)
		var zero T
		return zero, err
	}

	t.strategy.Record(inst, args)
	observability.LogConstruct(t.logger, t.name, constructID, float64(duration.Milliseconds()))
	return inst, nil
}

// Release removes inst's identity from the recorded index so a future
// Obtain constructs anew. The instance itself is not destroyed; external
// references stay valid.
//
// By default the type lock is not taken, mirroring the original contract:
// a release racing an obtain that has passed its fast-path check can
// transiently leave an old and a new instance in external hands, though
// never two recorded instances for one identity once both calls complete.
// Types defined with WithStrictRelease take the lock here instead.
func (t *Type[T, A]) Release(inst T) {
	if t.strictRelease {
		t.mu.Lock()
		defer t.mu.Unlock()
	}
	t.strategy.Release(inst)
	t.metrics.RecordRelease(context.Background(), t.name)
	observability.LogRelease(t.logger, t.name, t.strictRelease)
}
