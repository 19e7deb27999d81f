package telemetry

import "time"

// Resolution is the unit an elapsed duration is converted to before being
// recorded as a distribution sample.
type Resolution int

const (
	Seconds Resolution = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

// Convert expresses d in the resolution's unit.
func (r Resolution) Convert(d time.Duration) float64 {
	switch r {
	case Milliseconds:
		return float64(d) / float64(time.Millisecond)
	case Microseconds:
		return float64(d) / float64(time.Microsecond)
	case Nanoseconds:
		return float64(d)
	default:
		return d.Seconds()
	}
}

func (r Resolution) String() string {
	switch r {
	case Milliseconds:
		return "milliseconds"
	case Microseconds:
		return "microseconds"
	case Nanoseconds:
		return "nanoseconds"
	default:
		return "seconds"
	}
}

type timedConfig struct {
	resolution Resolution
}

// TimedOption configures a Timed or TimedList call.
type TimedOption func(*timedConfig)

// WithResolution selects the unit for the recorded sample.
// The default is Seconds.
func WithResolution(r Resolution) TimedOption {
	return func(cfg *timedConfig) { cfg.resolution = r }
}

// Timed measures fn's elapsed execution time and records it as a sample of
// the named distribution. It is TimedList with a single name.
func (m *Metrics) Timed(name string, fn func() error, opts ...TimedOption) error {
	return m.TimedList([]string{name}, fn, opts...)
}

// TimedList measures fn's elapsed execution time once and records the
// identical value as a sample of every named distribution. This records
// one duration under multiple categorical breakdowns (e.g., by-user and
// by-request-type) without re-measuring.
//
// All distributions are resolved before fn runs; a resolve failure is
// returned immediately and fn never executes. Once fn starts, the sample
// is recorded on every exit path (including error returns and panics),
// then fn's outcome propagates unchanged. fn executes exactly once.
func (m *Metrics) TimedList(names []string, fn func() error, opts ...TimedOption) error {
	cfg := timedConfig{resolution: Seconds}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	dists := make([]Distribution, 0, len(names))
	for _, name := range names {
		d, err := m.Distributions.Resolve(name)
		if err != nil {
			return err
		}
		dists = append(dists, d)
	}

	start := m.clock()
	defer func() {
		x := cfg.resolution.Convert(m.clock().Sub(start))
		for _, d := range dists {
			d.Add(x)
		}
	}()
	return fn()
}
