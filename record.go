package telemetry

import "fmt"

// Increment adds 1 to the named counter, creating it on first use.
func (m *Metrics) Increment(name string) error {
	return m.Count(name, 1)
}

// Count adds n to the named counter, creating it on first use.
// Negative n is passed through unguarded; see the package documentation.
func (m *Metrics) Count(name string, n int64) error {
	c, err := m.Counters.Resolve(name)
	if err != nil {
		return err
	}
	c.Add(n)
	return nil
}

// SetGauge replaces the named gauge's value with n, creating the gauge on
// first use.
func (m *Metrics) SetGauge(name string, n int64) error {
	g, err := m.Gauges.Resolve(name)
	if err != nil {
		return err
	}
	g.Set(n)
	return nil
}

// Observe records x as a sample of the named distribution, creating it on
// first use.
func (m *Metrics) Observe(name string, x float64) error {
	d, err := m.Distributions.Resolve(name)
	if err != nil {
		return err
	}
	d.Add(x)
	return nil
}

// SetLabel replaces the named label's value with s, creating the label on
// first use.
func (m *Metrics) SetLabel(name, s string) error {
	l, err := m.Labels.Resolve(name)
	if err != nil {
		return err
	}
	l.Set(s)
	return nil
}

// SetLabelValue replaces the named label's value with v's canonical
// display form (fmt.Sprint). No escaping is applied.
func (m *Metrics) SetLabelValue(name string, v interface{}) error {
	return m.SetLabel(name, fmt.Sprint(v))
}
