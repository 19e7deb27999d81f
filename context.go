package telemetry

import "context"

// Provider is the capability of producing the current Metrics value.
// Any execution context that can answer it is a valid host for the
// recording API: a *Metrics is its own Provider (direct fulfilment), and
// wrapper structures forward to their inner value's Provider (delegated
// fulfilment, at any nesting depth).
type Provider interface {
	Metrics() *Metrics
}

// Metrics implements Provider by returning the receiver.
func (m *Metrics) Metrics() *Metrics { return m }

// ProviderFunc adapts a projection function to the Provider capability,
// letting callers with an existing ambient structure supply "how to
// extract a Metrics from my structure" without restructuring it.
type ProviderFunc func() *Metrics

// Metrics implements Provider by invoking the function.
func (f ProviderFunc) Metrics() *Metrics { return f() }

type ctxKey struct{}

// NewContext returns a context carrying p as the ambient Metrics provider.
func NewContext(ctx context.Context, p Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// ProviderFromContext returns the provider carried by ctx, if any.
func ProviderFromContext(ctx context.Context) (Provider, bool) {
	p, ok := ctx.Value(ctxKey{}).(Provider)
	return p, ok
}

var noop = NewNoop()

// FromContext returns the Metrics carried by ctx. When ctx carries none,
// a process-wide no-op Metrics is returned, so recording through an
// unwired context is safe and discards everything. Use ProviderFromContext
// to detect whether a context is actually wired.
func FromContext(ctx context.Context) *Metrics {
	if p, ok := ProviderFromContext(ctx); ok {
		if m := p.Metrics(); m != nil {
			return m
		}
	}
	return noop
}

// Run constructs a fresh Metrics over a fresh BasicStore, makes it the
// ambient provider of ctx, and executes fn with the resulting context.
// It is the convenience entry point for callers with no pre-existing
// ambient structure.
func Run(ctx context.Context, fn func(context.Context) error, opts ...Option) error {
	m := New(NewBasicStore(), opts...)
	return fn(NewContext(ctx, m))
}

// The functions below are the context-resolving form of the recording API:
// each fetches the ambient Metrics from ctx and applies the corresponding
// method.

// Increment adds 1 to the named counter of the ambient Metrics.
func Increment(ctx context.Context, name string) error {
	return FromContext(ctx).Increment(name)
}

// Count adds n to the named counter of the ambient Metrics.
func Count(ctx context.Context, name string, n int64) error {
	return FromContext(ctx).Count(name, n)
}

// SetGauge replaces the named gauge's value on the ambient Metrics.
func SetGauge(ctx context.Context, name string, n int64) error {
	return FromContext(ctx).SetGauge(name, n)
}

// Observe records a sample of the named distribution of the ambient Metrics.
func Observe(ctx context.Context, name string, x float64) error {
	return FromContext(ctx).Observe(name, x)
}

// SetLabel replaces the named label's value on the ambient Metrics.
func SetLabel(ctx context.Context, name, s string) error {
	return FromContext(ctx).SetLabel(name, s)
}

// SetLabelValue replaces the named label's value with v's display form.
func SetLabelValue(ctx context.Context, name string, v interface{}) error {
	return FromContext(ctx).SetLabelValue(name, v)
}

// Timed times fn against the ambient Metrics; see Metrics.Timed.
func Timed(ctx context.Context, name string, fn func(context.Context) error, opts ...TimedOption) error {
	return FromContext(ctx).Timed(name, func() error { return fn(ctx) }, opts...)
}

// TimedList times fn once against the ambient Metrics, recording into
// every named distribution; see Metrics.TimedList.
func TimedList(ctx context.Context, names []string, fn func(context.Context) error, opts ...TimedOption) error {
	return FromContext(ctx).TimedList(names, func() error { return fn(ctx) }, opts...)
}
