package telemetry

import "sync"

// Registry is a concurrency-safe mapping from metric name to a lazily
// created instance of K. Instances are created on first Resolve of a name
// and reused for the same name afterwards; bindings are never replaced or
// removed. The create function is invoked at most once per name, even
// under contention, so side-effecting construction (registering the name
// with a Store) happens exactly once for the winning caller.
//
// The zero value is not usable; construct with NewRegistry.
type Registry[K any] struct {
	create func(name string) (K, error)

	entries sync.Map // map[string]K
	// per-key init mutexes: protect concurrent initialization for the same name
	inits sync.Map // map[string]*sync.Mutex

	// when true, per-key mutex entries are retained after initialization
	// instead of being deleted (see WithInitCleanupDisabled).
	keepInits bool

	// creation reporting; set by New when the registry is part of a Metrics
	kind   string
	logger Logger
}

// NewRegistry constructs a Registry whose instances are produced by create.
// create is called at most once per name; if it returns an error, nothing
// is bound and a later Resolve of the same name calls it again.
func NewRegistry[K any](create func(name string) (K, error)) *Registry[K] {
	return &Registry[K]{create: create, kind: "metric", logger: newNoopLogger()}
}

// keyMu returns the per-name init mutex, creating one if necessary.
func (r *Registry[K]) keyMu(name string) *sync.Mutex {
	m, _ := r.inits.LoadOrStore(name, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// Resolve returns the instance bound to name, creating and binding it on
// first use. It implements a fast unlocked read path and deduplicates
// concurrent initializations with a per-name mutex, so contention on
// distinct names never blocks.
func (r *Registry[K]) Resolve(name string) (K, error) {
	var zero K
	if name == "" {
		return zero, ErrEmptyName
	}

	// fast read path using sync.Map loads (safe without a lock)
	if v, ok := r.entries.Load(name); ok {
		return v.(K), nil
	}

	km := r.keyMu(name)
	km.Lock()
	defer km.Unlock()

	// re-check after acquiring the per-name mutex
	if v, ok := r.entries.Load(name); ok {
		return v.(K), nil
	}

	inst, err := r.create(name)
	if err != nil {
		// nothing was bound; a later Resolve of the same name retries
		r.logger.Warnf("telemetry: creating %s %q failed: %v", r.kind, name, err)
		return zero, err
	}
	r.entries.Store(name, inst)
	r.logger.Debugf("telemetry: created %s %q", r.kind, name)

	// Remove the per-name mutex to allow GC of mutexes for many ephemeral
	// names. It's safe to delete while holding the mutex; goroutines that
	// already hold the pointer will continue to use it, and new callers
	// will re-check the entries map first.
	if !r.keepInits {
		r.inits.Delete(name)
	}
	return inst, nil
}

// Load returns the instance bound to name without creating one.
func (r *Registry[K]) Load(name string) (K, bool) {
	if v, ok := r.entries.Load(name); ok {
		return v.(K), true
	}
	var zero K
	return zero, false
}

// Range calls f for each bound name until f returns false.
// It is a best-effort point-in-time view and may race with concurrent creations.
func (r *Registry[K]) Range(f func(name string, inst K) bool) {
	r.entries.Range(func(k, v interface{}) bool {
		return f(k.(string), v.(K))
	})
}

// Len reports the number of bound names.
func (r *Registry[K]) Len() int {
	n := 0
	r.entries.Range(func(_, _ interface{}) bool { n++; return true })
	return n
}
