package telemetry

// Store binds metric names to a process-wide backend (in-memory, expvar,
// Prometheus, ...). Each Create call registers name with the backend and
// returns a fresh mutable primitive bound to it; a failed call must leave
// the backend unchanged.
//
// A Store is not required to tolerate duplicate registration of the same
// name and kind. The Registry guarantees at most one Create call per name,
// so implementations may simply fail (or misbehave per their backend's
// rules) on repeats.
//
// Implementations must be safe for concurrent use.
type Store interface {
	CreateCounter(name string) (Counter, error)
	CreateGauge(name string) (Gauge, error)
	CreateDistribution(name string) (Distribution, error)
	CreateLabel(name string) (Label, error)
}

// Counter records monotonic counts.
// Methods must be safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// Gauge records a signed value that can be replaced or moved up and down
// (e.g., current in-flight).
// Methods must be safe for concurrent use.
type Gauge interface {
	Set(n int64)
	Add(n int64)
}

// Distribution accumulates a running statistical summary of float64
// samples (e.g., durations in seconds).
// Methods must be safe for concurrent use.
type Distribution interface {
	Add(x float64)
}

// Label holds the latest string value recorded under a name.
// Methods must be safe for concurrent use.
type Label interface {
	Set(s string)
}
