// Package registry provides the process-wide table of singleton type
// registrations.
//
// Every call to sole.Define creates a heap-allocated registration record
// (the *sole.Type) holding that type's lock and strategy state, and stores
// it here under the type's name. The table is created on first use and is
// never torn down implicitly; registrations live for the process lifetime
// unless removed explicitly.
//
// # Basic Usage
//
// The default table is shared by the whole process:
//
//	table := registry.Default()
//	entry, ok := table.Get("database")
//	if ok {
//	    fmt.Println(entry.ID())
//	}
//
// Independent tables can be created for tests:
//
//	table := registry.New()
//	err := table.Add(entry)
//
// # Thread Safety
//
// All Table methods are safe for concurrent use. Range iterates over a
// snapshot, so registrations may be added or removed during iteration
// without affecting the current iteration.
package registry
