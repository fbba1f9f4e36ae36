/*
Package sole coordinates single-instance-per-key construction.

# Overview

sole guarantees that for a registered type, at most one instance exists
per identity: construction (allocation plus initialization) runs at most
once per key even under concurrent first-time access, and a recorded
instance can later be explicitly released so the next request constructs
a fresh one. Identity is reference identity: two calls returning "the
same instance" return the same allocation.

A registered type pairs a per-type lock with a key-resolution strategy.
The strategy decides how many distinct instances the type may have: the
default is one slot per type, ignoring construction arguments; a keyed
strategy maps each distinct argument to its own instance; a shared
strategy pools several registrations into one instance.

# Basic Usage

Define a type once, then obtain it from anywhere:

	type Clock struct {
	    tz string
	}

	clockType, err := sole.Define("clock",
	    func(sole.NoArgs) (*Clock, error) { return &Clock{tz: "UTC"}, nil },
	    nil,
	)
	if err != nil {
	    log.Fatal(err)
	}

	a, _ := clockType.Obtain(ctx, sole.NoArgs{})
	b, _ := clockType.Obtain(ctx, sole.NoArgs{})
	// a == b: same allocation

Already-resolved lookups are lock-free; only a construction race blocks,
and exactly one of the racing goroutines constructs.

# Custom Identity

Supply a strategy to key instances by their construction arguments:

	connByDSN := sole.NewKeyed[*Conn, string, string](
	    func(dsn string) string { return dsn },
	    func(c *Conn) string { return c.DSN },
	)
	connType, _ := sole.Define("conn", allocConn, initConn,
	    sole.WithStrategy[*Conn, string](connByDSN),
	)

	foo, _ := connType.Obtain(ctx, "foo") // constructs
	bar, _ := connType.Obtain(ctx, "bar") // constructs
	foo2, _ := connType.Obtain(ctx, "foo") // foo2 == foo

The three hooks can also be supplied individually with WithResolve,
WithRecord and WithRelease; a type must supply all three or none, and
Define fails with IncompleteStrategyError otherwise.

# Release

Release removes an instance's identity from the recorded index without
destroying the instance:

	connType.Release(foo)
	fresh, _ := connType.Obtain(ctx, "foo") // fresh != foo

By default Release does not take the type lock; see WithStrictRelease
for the trade-off.

# Observability

Logging (slog), metrics and tracing (OpenTelemetry) are opt-in per type
via WithLogger, WithMetrics and WithTracing, or loaded from a file with
WithConfig. Everything defaults to no-op.
*/
package sole
