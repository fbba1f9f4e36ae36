package sole

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for type definition.
var (
	// ErrIncompleteStrategy indicates a type defined some but not all of the
	// resolve, record and release hooks.
	ErrIncompleteStrategy = errors.New("define all or none of resolve, record and release")

	// ErrConflictingStrategy indicates WithStrategy was combined with
	// individual hook options.
	ErrConflictingStrategy = errors.New("strategy and individual hooks are mutually exclusive")

	// ErrNilAllocator indicates Define was called without an allocator.
	ErrNilAllocator = errors.New("allocator cannot be nil")

	// ErrEmptyName indicates Define was called with an empty type name.
	ErrEmptyName = errors.New("type name cannot be empty")

	// ErrDuplicateDefinition indicates the type name is already registered.
	ErrDuplicateDefinition = errors.New("type name already defined")
)

// DefineError wraps errors from type definition.
type DefineError struct {
	// TypeName is the name passed to Define.
	TypeName string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DefineError) Error() string {
	return fmt.Sprintf("define %s: %v", e.TypeName, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DefineError) Unwrap() error {
	return e.Err
}

// IncompleteStrategyError reports which hooks a partial strategy defined
// and which it is missing. It is returned by Define when exactly one or
// two of the resolve, record and release hooks are supplied.
type IncompleteStrategyError struct {
	// TypeName is the name passed to Define.
	TypeName string
	// Defined lists the hooks that were supplied.
	Defined []string
	// Missing lists the hooks that were not supplied.
	Missing []string
}

// Error implements the error interface.
func (e *IncompleteStrategyError) Error() string {
	return fmt.Sprintf("define %s: incomplete strategy (have %s, missing %s): %v",
		e.TypeName,
		strings.Join(e.Defined, ", "),
		strings.Join(e.Missing, ", "),
		ErrIncompleteStrategy,
	)
}

// Unwrap returns ErrIncompleteStrategy for errors.Is support.
func (e *IncompleteStrategyError) Unwrap() error {
	return ErrIncompleteStrategy
}
