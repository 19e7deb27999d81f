package telemetry

// NewNoop returns a Metrics whose recordings are discarded. Useful as a
// default when no real store is wired, and as the FromContext fallback.
func NewNoop() *Metrics {
	return New(noopStore{})
}

// noopStore hands out shared no-op instruments; nothing is registered anywhere.
type noopStore struct{}

func (noopStore) CreateCounter(string) (Counter, error)           { return noopCounter{}, nil }
func (noopStore) CreateGauge(string) (Gauge, error)               { return noopGauge{}, nil }
func (noopStore) CreateDistribution(string) (Distribution, error) { return noopDistribution{}, nil }
func (noopStore) CreateLabel(string) (Label, error)               { return noopLabel{}, nil }

type noopCounter struct{}

func (noopCounter) Add(int64) {}

type noopGauge struct{}

func (noopGauge) Set(int64) {}
func (noopGauge) Add(int64) {}

type noopDistribution struct{}

func (noopDistribution) Add(float64) {}

type noopLabel struct{}

func (noopLabel) Set(string) {}
