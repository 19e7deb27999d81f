package telemetry

import (
	"sync"

	"github.com/ygrebnov/errorc"
)

// BasicStore is a simple in-memory implementation of Store.
// It is concurrency-safe and suitable for tests, examples, and lightweight apps.
// Registered instruments are retained for the lifetime of the store and can
// be inspected with Snapshot or exported via PublishExpvar.
type BasicStore struct {
	mu            sync.Mutex
	counters      map[string]*BasicCounter
	gauges        map[string]*BasicGauge
	distributions map[string]*BasicDistribution
	labels        map[string]*BasicLabel
}

// NewBasicStore constructs a new BasicStore.
func NewBasicStore() *BasicStore {
	return &BasicStore{
		counters:      make(map[string]*BasicCounter),
		gauges:        make(map[string]*BasicGauge),
		distributions: make(map[string]*BasicDistribution),
		labels:        make(map[string]*BasicLabel),
	}
}

// CreateCounter registers name and returns a fresh counter.
// Registering the same name twice fails with ErrDuplicateName.
func (s *BasicStore) CreateCounter(name string) (Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.counters[name]; ok {
		return nil, errorc.With(ErrDuplicateName, errorc.String("counter", name))
	}
	c := &BasicCounter{}
	s.counters[name] = c
	return c, nil
}

// CreateGauge registers name and returns a fresh gauge.
// Registering the same name twice fails with ErrDuplicateName.
func (s *BasicStore) CreateGauge(name string) (Gauge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gauges[name]; ok {
		return nil, errorc.With(ErrDuplicateName, errorc.String("gauge", name))
	}
	g := &BasicGauge{}
	s.gauges[name] = g
	return g, nil
}

// CreateDistribution registers name and returns a fresh distribution.
// Registering the same name twice fails with ErrDuplicateName.
func (s *BasicStore) CreateDistribution(name string) (Distribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.distributions[name]; ok {
		return nil, errorc.With(ErrDuplicateName, errorc.String("distribution", name))
	}
	d := &BasicDistribution{}
	s.distributions[name] = d
	return d, nil
}

// CreateLabel registers name and returns a fresh label.
// Registering the same name twice fails with ErrDuplicateName.
func (s *BasicStore) CreateLabel(name string) (Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.labels[name]; ok {
		return nil, errorc.With(ErrDuplicateName, errorc.String("label", name))
	}
	l := &BasicLabel{}
	s.labels[name] = l
	return l, nil
}

// StoreSnapshot is a point-in-time copy of every registered instrument's value.
type StoreSnapshot struct {
	Counters      map[string]int64                `json:"counters"`
	Gauges        map[string]int64                `json:"gauges"`
	Distributions map[string]DistributionSnapshot `json:"distributions"`
	Labels        map[string]string               `json:"labels"`
}

// Snapshot returns a best-effort snapshot of all registered instruments.
// Values are read without pausing writers, so concurrent mutations may or
// may not be reflected.
func (s *BasicStore) Snapshot() StoreSnapshot {
	s.mu.Lock()
	counters := make(map[string]*BasicCounter, len(s.counters))
	for k, v := range s.counters {
		counters[k] = v
	}
	gauges := make(map[string]*BasicGauge, len(s.gauges))
	for k, v := range s.gauges {
		gauges[k] = v
	}
	distributions := make(map[string]*BasicDistribution, len(s.distributions))
	for k, v := range s.distributions {
		distributions[k] = v
	}
	labels := make(map[string]*BasicLabel, len(s.labels))
	for k, v := range s.labels {
		labels[k] = v
	}
	s.mu.Unlock()

	out := StoreSnapshot{
		Counters:      make(map[string]int64, len(counters)),
		Gauges:        make(map[string]int64, len(gauges)),
		Distributions: make(map[string]DistributionSnapshot, len(distributions)),
		Labels:        make(map[string]string, len(labels)),
	}
	for k, v := range counters {
		out.Counters[k] = v.Snapshot()
	}
	for k, v := range gauges {
		out.Gauges[k] = v.Snapshot()
	}
	for k, v := range distributions {
		out.Distributions[k] = v.Snapshot()
	}
	for k, v := range labels {
		out.Labels[k] = v.Snapshot()
	}
	return out
}
