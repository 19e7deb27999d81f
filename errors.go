package telemetry

import "errors"

const Namespace = "telemetry"

var (
	ErrEmptyName     = errors.New(Namespace + ": metric name must not be empty")
	ErrDuplicateName = errors.New(Namespace + ": metric name already registered")
	ErrRegister      = errors.New(Namespace + ": store registration failed")
)
