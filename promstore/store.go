// Package promstore implements a telemetry.Store backed by a Prometheus
// registry, using github.com/prometheus/client_golang.
//
// Counters and gauges map directly onto their Prometheus counterparts,
// distributions onto summaries, and labels onto info-style gauge vectors
// (a single "value" label carrying the string, with the sample value
// pinned to 1). The registry's contents are served over HTTP by Handler.
package promstore

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/telemetry"
)

// Store implements telemetry.Store over a prometheus.Registry.
// Methods are safe for concurrent use; registration itself is serialized
// by the upstream registry.
type Store struct {
	registry    *prometheus.Registry
	namespace   string
	subsystem   string
	constLabels prometheus.Labels
}

type config struct {
	registry    *prometheus.Registry
	namespace   string
	subsystem   string
	constLabels map[string]string
}

// Option configures a Store constructed by New.
type Option func(*config)

// WithRegistry uses an existing registry instead of a fresh one.
func WithRegistry(r *prometheus.Registry) Option {
	return func(cfg *config) { cfg.registry = r }
}

// WithNamespace sets the namespace component of every metric's full name.
func WithNamespace(ns string) Option {
	return func(cfg *config) { cfg.namespace = ns }
}

// WithSubsystem sets the subsystem component of every metric's full name.
func WithSubsystem(sub string) Option {
	return func(cfg *config) { cfg.subsystem = sub }
}

// WithConstLabels attaches constant labels to every metric.
func WithConstLabels(labels map[string]string) Option {
	return func(cfg *config) {
		if len(labels) == 0 {
			return
		}
		if cfg.constLabels == nil {
			cfg.constLabels = make(map[string]string, len(labels))
		}
		for k, v := range labels {
			cfg.constLabels[k] = v
		}
	}
}

// New constructs a Store. Without options it owns a fresh empty registry.
func New(opts ...Option) *Store {
	cfg := &config{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
	}
	constLabels := make(prometheus.Labels, len(cfg.constLabels))
	for k, v := range cfg.constLabels {
		constLabels[k] = v
	}
	return &Store{
		registry:    cfg.registry,
		namespace:   cfg.namespace,
		subsystem:   cfg.subsystem,
		constLabels: constLabels,
	}
}

// Registry exposes the underlying Prometheus registry for callers that
// register additional collectors alongside this store.
func (s *Store) Registry() *prometheus.Registry { return s.registry }

// Handler returns an HTTP handler serving the registry's metrics in
// Prometheus exposition format.
func (s *Store) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// CreateCounter registers name and returns a counter bound to it.
// Duplicate registration fails with telemetry.ErrRegister.
func (s *Store) CreateCounter(name string) (telemetry.Counter, error) {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   s.namespace,
		Subsystem:   s.subsystem,
		Name:        name,
		ConstLabels: s.constLabels,
	})
	if err := s.registry.Register(c); err != nil {
		return nil, errorc.With(telemetry.ErrRegister, errorc.String("counter", name), errorc.String("cause", err.Error()))
	}
	return &counter{c: c}, nil
}

// CreateGauge registers name and returns a gauge bound to it.
// Duplicate registration fails with telemetry.ErrRegister.
func (s *Store) CreateGauge(name string) (telemetry.Gauge, error) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   s.namespace,
		Subsystem:   s.subsystem,
		Name:        name,
		ConstLabels: s.constLabels,
	})
	if err := s.registry.Register(g); err != nil {
		return nil, errorc.With(telemetry.ErrRegister, errorc.String("gauge", name), errorc.String("cause", err.Error()))
	}
	return &gauge{g: g}, nil
}

// CreateDistribution registers name and returns a summary-backed
// distribution bound to it.
// Duplicate registration fails with telemetry.ErrRegister.
func (s *Store) CreateDistribution(name string) (telemetry.Distribution, error) {
	d := prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace:   s.namespace,
		Subsystem:   s.subsystem,
		Name:        name,
		ConstLabels: s.constLabels,
	})
	if err := s.registry.Register(d); err != nil {
		return nil, errorc.With(telemetry.ErrRegister, errorc.String("distribution", name), errorc.String("cause", err.Error()))
	}
	return &distribution{d: d}, nil
}

// CreateLabel registers name and returns a label bound to it. The label is
// exposed as an info-style gauge vector: the current string lives in the
// "value" label of the single series whose sample value is 1.
// Duplicate registration fails with telemetry.ErrRegister.
func (s *Store) CreateLabel(name string) (telemetry.Label, error) {
	v := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   s.namespace,
		Subsystem:   s.subsystem,
		Name:        name,
		ConstLabels: s.constLabels,
	}, []string{"value"})
	if err := s.registry.Register(v); err != nil {
		return nil, errorc.With(telemetry.ErrRegister, errorc.String("label", name), errorc.String("cause", err.Error()))
	}
	return &label{v: v}, nil
}

type counter struct {
	c prometheus.Counter
}

// Add forwards non-negative deltas. Negative deltas are skipped because
// prometheus.Counter panics on them and a recording layer must not panic
// the caller.
func (c *counter) Add(n int64) {
	if n < 0 {
		return
	}
	c.c.Add(float64(n))
}

type gauge struct {
	g prometheus.Gauge
}

func (g *gauge) Set(n int64) { g.g.Set(float64(n)) }
func (g *gauge) Add(n int64) { g.g.Add(float64(n)) }

type distribution struct {
	d prometheus.Summary
}

func (d *distribution) Add(x float64) { d.d.Observe(x) }

type label struct {
	mu sync.Mutex
	v  *prometheus.GaugeVec
}

// Set replaces the exposed series so only the latest value is visible.
// Reset and re-add are two vector operations, so they are serialized here.
func (l *label) Set(s string) {
	l.mu.Lock()
	l.v.Reset()
	l.v.WithLabelValues(s).Set(1)
	l.mu.Unlock()
}
