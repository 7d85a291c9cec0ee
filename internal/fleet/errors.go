package fleet

import (
	"errors"
	"fmt"
)

// Validation errors for fixture documents.
var (
	// ErrUnknownStatus indicates a robot status other than active, charging or idle.
	ErrUnknownStatus = errors.New("fleet: unknown robot status")

	// ErrUnknownSeverity indicates an alert severity other than high, medium or low.
	ErrUnknownSeverity = errors.New("fleet: unknown alert severity")

	// ErrDuplicateRobot indicates two robots sharing an ID.
	ErrDuplicateRobot = errors.New("fleet: duplicate robot id")

	// ErrBatteryRange indicates a battery level outside 0..100.
	ErrBatteryRange = errors.New("fleet: battery level out of range")

	// ErrEmptyKey indicates a KPI or landing metric without a key.
	ErrEmptyKey = errors.New("fleet: missing key")

	// ErrUnknownPrecision indicates a landing metric precision other than whole or tenths.
	ErrUnknownPrecision = errors.New("fleet: unknown precision")
)

// FixtureError wraps a validation error with the path of the offending field.
type FixtureError struct {
	Field   string
	Wrapped error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Wrapped)
}

func (e *FixtureError) Unwrap() error {
	return e.Wrapped
}

func fieldErr(err error, format string, args ...any) error {
	return &FixtureError{Field: fmt.Sprintf(format, args...), Wrapped: err}
}
