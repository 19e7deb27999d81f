package telemetry

import "time"

// Metrics is the process-facing aggregate: four independent registries,
// one per metric kind, all bound to the same Store. The registry fields
// and Store are exported for advanced/manual use; typical callers go
// through the recording methods (Increment, Count, SetGauge, Observe,
// SetLabel, Timed, ...).
//
// A Metrics value is created once (at application startup, or per unit of
// work via Run) and shared by any number of goroutines for its lifetime.
type Metrics struct {
	Counters      *Registry[Counter]
	Gauges        *Registry[Gauge]
	Distributions *Registry[Distribution]
	Labels        *Registry[Label]
	Store         Store

	logger Logger
	clock  func() time.Time
}

// New constructs a Metrics aggregate bound to store.
// Accepts optional functional options to customize behavior.
func New(store Store, opts ...Option) *Metrics {
	cfg := &config{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = newNoopLogger()
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}

	m := &Metrics{
		Counters:      NewRegistry(store.CreateCounter),
		Gauges:        NewRegistry(store.CreateGauge),
		Distributions: NewRegistry(store.CreateDistribution),
		Labels:        NewRegistry(store.CreateLabel),
		Store:         store,
		logger:        cfg.logger,
		clock:         cfg.clock,
	}
	m.Counters.kind, m.Counters.logger = "counter", cfg.logger
	m.Gauges.kind, m.Gauges.logger = "gauge", cfg.logger
	m.Distributions.kind, m.Distributions.logger = "distribution", cfg.logger
	m.Labels.kind, m.Labels.logger = "label", cfg.logger
	if cfg.doNotCleanupInits {
		m.Counters.keepInits = true
		m.Gauges.keepInits = true
		m.Distributions.keepInits = true
		m.Labels.keepInits = true
	}
	return m
}
