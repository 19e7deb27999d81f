// Package zaplog adapts a zap logger to the telemetry.Logger interface.
package zaplog

import (
	"go.uber.org/zap"

	"github.com/ygrebnov/telemetry"
)

// New wraps l so it can be passed to telemetry.WithLogger.
func New(l *zap.Logger) telemetry.Logger {
	return &adapter{s: l.Sugar()}
}

type adapter struct {
	s *zap.SugaredLogger
}

func (a *adapter) Debugf(format string, args ...interface{}) { a.s.Debugf(format, args...) }
func (a *adapter) Infof(format string, args ...interface{})  { a.s.Infof(format, args...) }
func (a *adapter) Warnf(format string, args ...interface{})  { a.s.Warnf(format, args...) }
func (a *adapter) Errorf(format string, args ...interface{}) { a.s.Errorf(format, args...) }
