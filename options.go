package telemetry

import "time"

type config struct {
	logger Logger
	clock  func() time.Time
	// when true, per-name init mutex entries are retained in the registries
	// after initialization instead of being deleted. Default: false.
	doNotCleanupInits bool
}

// Option configures a Metrics value constructed by New.
type Option func(*config)

// WithLogger sets the logger used for non-fatal internal reports.
// The default logger discards everything.
func WithLogger(l Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// WithClock sets the time source used by Timed and TimedList.
// The default is time.Now, whose monotonic reading makes elapsed-time
// computation immune to wall-clock adjustments. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) { cfg.clock = now }
}

// WithInitCleanupDisabled controls whether per-name init mutex entries are
// removed from the registries after initialization. By default the entries
// are deleted to allow GC of mutexes for many ephemeral metric names; this
// option disables the cleanup.
func WithInitCleanupDisabled() Option {
	return func(cfg *config) { cfg.doNotCleanupInits = true }
}
