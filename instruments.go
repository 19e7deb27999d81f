package telemetry

import (
	"sync"
	"sync/atomic"
)

// BasicCounter is a thread-safe monotonic counter.
type BasicCounter struct {
	val atomic.Int64
}

// Add increments the counter by n (n may be negative but it's not recommended for monotonic counters).
func (c *BasicCounter) Add(n int64) { c.val.Add(n) }

// Snapshot returns the current value.
func (c *BasicCounter) Snapshot() int64 { return c.val.Load() }

// BasicGauge is a thread-safe gauge holding a signed value.
type BasicGauge struct {
	val atomic.Int64
}

// Set replaces the current value with n.
func (g *BasicGauge) Set(n int64) { g.val.Store(n) }

// Add adds n (positive or negative) to the current value.
func (g *BasicGauge) Add(n int64) { g.val.Add(n) }

// Snapshot returns the current value.
func (g *BasicGauge) Snapshot() int64 { return g.val.Load() }

// BasicDistribution is a thread-safe accumulator that tracks count, sum,
// min, and max over a stream of samples. It does not maintain buckets;
// it's intended as a lightweight, general-purpose aggregator.
type BasicDistribution struct {
	mu    sync.Mutex
	count int64
	sum   float64
	min   float64
	max   float64
}

// Add records a sample.
func (d *BasicDistribution) Add(x float64) {
	d.mu.Lock()
	if d.count == 0 {
		// initialize min/max on first sample
		d.min, d.max = x, x
	} else {
		if x < d.min {
			d.min = x
		}
		if x > d.max {
			d.max = x
		}
	}
	d.count++
	d.sum += x
	d.mu.Unlock()
}

// DistributionSnapshot is an immutable snapshot of a BasicDistribution.
type DistributionSnapshot struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
	Mean  float64
}

// Snapshot returns a copy of the accumulator state at the time of call.
func (d *BasicDistribution) Snapshot() DistributionSnapshot {
	d.mu.Lock()
	count := d.count
	sum := d.sum
	minV := d.min
	maxV := d.max
	d.mu.Unlock()
	mean := 0.0
	if count > 0 {
		mean = sum / float64(count)
	}
	return DistributionSnapshot{Count: count, Sum: sum, Min: minV, Max: maxV, Mean: mean}
}

// BasicLabel is a thread-safe mutable string value. The initial value is
// the empty string.
type BasicLabel struct {
	val atomic.Value // string
}

// Set replaces the current value with s.
func (l *BasicLabel) Set(s string) { l.val.Store(s) }

// Snapshot returns the current value.
func (l *BasicLabel) Snapshot() string {
	if v, ok := l.val.Load().(string); ok {
		return v
	}
	return ""
}
