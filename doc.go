/*
Package telemetry provides a small, concurrency-safe recording layer for Go:
counters, gauges, distributions, and string labels, resolved by name through
lazily-populated registries and backed by a pluggable store.

# Overview

The library is organized around three pieces:

1. Store: the binding to an external metrics backend. A Store registers a
name once and hands back a mutable primitive bound to it
(Counter, Gauge, Distribution, Label). Two implementations ship with the
module: BasicStore (in-memory, snapshot/expvar export) and promstore.Store
(Prometheus registry with an HTTP export handler).

	type Store interface {
	  CreateCounter(name string) (Counter, error)
	  CreateGauge(name string) (Gauge, error)
	  CreateDistribution(name string) (Distribution, error)
	  CreateLabel(name string) (Label, error)
	}

2. Registry: a generic name-to-instance map with lazy, exactly-once
creation. Any number of goroutines may Resolve the same name concurrently;
exactly one of them creates (and thereby registers with the store), the
rest get the winning instance. Bindings are never replaced or removed.

3. Metrics: the aggregate of four registries sharing one store, carrying
the recording API (Increment, Count, SetGauge, Observe, SetLabel,
SetLabelValue, Timed, TimedList) plus a context-based capability accessor
for code that prefers ambient propagation over explicit handles.

How it works (high level)

 1. Fast path: a Resolve looks the name up in the registry's sync.Map and
    returns the instance if present.
 2. Slow path: acquire a per-name mutex, re-check, call the store factory
    exactly once, store the instance, and optionally delete the init mutex
    entry. Contention on distinct names never shares a lock.
 3. Recording methods resolve through the owning registry and apply a
    single primitive mutation; store registration failures propagate to the
    caller before anything is mutated.
 4. Timed and TimedList take one monotonic time measurement around the
    wrapped action and record it into the named distributions on every
    exit path (including error returns and panics), then let the action's
    outcome propagate unchanged.

Examples

	store := telemetry.NewBasicStore()
	m := telemetry.New(store)

	m.Increment("requests")
	m.SetGauge("inflight", 3)
	m.Observe("payload_bytes", 512)
	m.SetLabel("build", "v1.4.2")

	err := m.Timed("handler", func() error {
	    return handle(req)
	}, telemetry.WithResolution(telemetry.Milliseconds))

	// ambient propagation
	ctx := telemetry.NewContext(context.Background(), m)
	telemetry.Increment(ctx, "requests")

	// export on /debug/vars
	store.PublishExpvar("app_metrics")

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector:

	go test -race ./...

# Notes

- Counter deltas are not validated: a negative value passed to Count is
forwarded to the store's counter as-is (BasicStore accepts it; promstore
skips negative deltas because Prometheus counters reject them). Pick a
convention at the call site.

- SetLabelValue renders values with fmt.Sprint and applies no escaping;
multi-line or control-character values pass through verbatim.

- Registries are append-only: there is deliberately no way to remove or
replace a bound name. Stores may therefore assume at most one registration
per name and kind.
*/
package telemetry
