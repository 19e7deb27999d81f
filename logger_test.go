package telemetry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// capturingLogger records formatted messages for assertions.
type capturingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *capturingLogger) logf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, level+": "+fmt.Sprintf(format, args...))
}

func (l *capturingLogger) Debugf(format string, args ...interface{}) { l.logf("debug", format, args...) }
func (l *capturingLogger) Infof(format string, args ...interface{})  { l.logf("info", format, args...) }
func (l *capturingLogger) Warnf(format string, args ...interface{})  { l.logf("warn", format, args...) }
func (l *capturingLogger) Errorf(format string, args ...interface{}) { l.logf("error", format, args...) }

func (l *capturingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestWithLogger_ReportsCreation(t *testing.T) {
	log := &capturingLogger{}
	m := New(NewBasicStore(), WithLogger(log))

	require.NoError(t, m.Increment("requests"))
	require.True(t, log.contains(`created counter "requests"`))

	require.NoError(t, m.Observe("lat", 1))
	require.True(t, log.contains(`created distribution "lat"`))
}

func TestWithLogger_ReportsCreateFailure(t *testing.T) {
	log := &capturingLogger{}
	boom := errors.New("backend down")
	m := New(&distFailingStore{inner: NewBasicStore(), err: boom}, WithLogger(log))

	require.ErrorIs(t, m.Observe("lat", 1), boom)
	require.True(t, log.contains(`creating distribution "lat" failed`))
}
