package telemetry

import "expvar"

// PublishExpvar exposes the store's snapshot under name on the standard
// expvar surface (the /debug/vars HTTP endpoint). The published variable
// renders the full StoreSnapshot as JSON on every read.
//
// expvar.Publish panics if name is already published; publish each store
// under a distinct name, once.
func (s *BasicStore) PublishExpvar(name string) {
	expvar.Publish(name, expvar.Func(func() interface{} {
		return s.Snapshot()
	}))
}
