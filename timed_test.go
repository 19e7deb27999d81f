package telemetry

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock advances by a fixed step on every reading, making elapsed
// durations deterministic: one Timed call reads it twice, so the recorded
// duration is exactly step.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{t: time.Unix(0, 0), step: step}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func distSnapshot(t *testing.T, m *Metrics, name string) DistributionSnapshot {
	t.Helper()
	d, ok := m.Distributions.Load(name)
	require.True(t, ok, "distribution %q not bound", name)
	return d.(*BasicDistribution).Snapshot()
}

func TestMetrics_Timed_RecordsElapsed(t *testing.T) {
	m := New(NewBasicStore(), WithClock(newFakeClock(250*time.Millisecond).now))

	err := m.Timed("op", func() error { return nil })
	require.NoError(t, err)

	s := distSnapshot(t, m, "op")
	require.Equal(t, int64(1), s.Count)
	require.Equal(t, 0.25, s.Sum, "default resolution is seconds")
}

func TestMetrics_Timed_Resolutions(t *testing.T) {
	tests := []struct {
		resolution Resolution
		want       float64
	}{
		{Seconds, 0.002},
		{Milliseconds, 2},
		{Microseconds, 2000},
		{Nanoseconds, 2000000},
	}
	for _, tt := range tests {
		t.Run(tt.resolution.String(), func(t *testing.T) {
			m := New(NewBasicStore(), WithClock(newFakeClock(2*time.Millisecond).now))
			require.NoError(t, m.Timed("op", func() error { return nil }, WithResolution(tt.resolution)))
			require.Equal(t, tt.want, distSnapshot(t, m, "op").Sum)
		})
	}
}

func TestMetrics_Timed_RecordsOnFailure(t *testing.T) {
	m := New(NewBasicStore(), WithClock(newFakeClock(time.Second).now))
	boom := errors.New("action failed")

	err := m.Timed("op", func() error { return boom })
	require.ErrorIs(t, err, boom, "the action's failure must propagate unchanged")

	s := distSnapshot(t, m, "op")
	require.Equal(t, int64(1), s.Count, "the sample must be recorded even when the action fails")
	require.Equal(t, 1.0, s.Sum)
}

func TestMetrics_Timed_RecordsOnPanic(t *testing.T) {
	m := New(NewBasicStore(), WithClock(newFakeClock(time.Second).now))

	require.PanicsWithValue(t, "kaboom", func() {
		_ = m.Timed("op", func() error { panic("kaboom") })
	})
	require.Equal(t, int64(1), distSnapshot(t, m, "op").Count)
}

func TestMetrics_TimedList_FanOut(t *testing.T) {
	m := New(NewBasicStore(), WithClock(newFakeClock(100*time.Millisecond).now))

	executions := 0
	err := m.TimedList([]string{"x", "y", "z"}, func() error {
		executions++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, executions, "the action must execute exactly once")

	sx := distSnapshot(t, m, "x")
	sy := distSnapshot(t, m, "y")
	sz := distSnapshot(t, m, "z")
	require.Equal(t, int64(1), sx.Count)
	require.Equal(t, int64(1), sy.Count)
	require.Equal(t, int64(1), sz.Count)
	require.Equal(t, sx.Sum, sy.Sum, "one measurement shared by all names")
	require.Equal(t, sx.Sum, sz.Sum, "one measurement shared by all names")
}

type distFailingStore struct {
	inner *BasicStore
	err   error
}

func (s *distFailingStore) CreateCounter(name string) (Counter, error) {
	return s.inner.CreateCounter(name)
}
func (s *distFailingStore) CreateGauge(name string) (Gauge, error) { return s.inner.CreateGauge(name) }
func (s *distFailingStore) CreateDistribution(string) (Distribution, error) {
	return nil, s.err
}
func (s *distFailingStore) CreateLabel(name string) (Label, error) { return s.inner.CreateLabel(name) }

func TestMetrics_Timed_ResolveFailureSkipsAction(t *testing.T) {
	boom := errors.New("registration failed")
	m := New(&distFailingStore{inner: NewBasicStore(), err: boom})

	executed := false
	err := m.Timed("op", func() error {
		executed = true
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.False(t, executed, "the action must not run when resolution fails")
}

func TestResolution_Convert(t *testing.T) {
	d := 1500 * time.Millisecond
	require.Equal(t, 1.5, Seconds.Convert(d))
	require.Equal(t, 1500.0, Milliseconds.Convert(d))
	require.Equal(t, 1500000.0, Microseconds.Convert(d))
	require.Equal(t, 1500000000.0, Nanoseconds.Convert(d))
}
