package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a sample count that could not be parsed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig marks a grid or engine configuration that cannot be launched.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrDeviceFailure matches every DeviceError.
	ErrDeviceFailure = errors.New("device failure")
	// ErrUndefinedEstimate is returned when no samples were drawn.
	ErrUndefinedEstimate = errors.New("pi estimate undefined for zero samples")
)

// DeviceError reports a fatal failure of the execution backend.
type DeviceError struct {
	Op  string // failing operation, e.g. "query device", "launch", "kernel"
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDeviceFailure) match any DeviceError.
func (e *DeviceError) Is(target error) bool {
	return target == ErrDeviceFailure
}
