package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrInvalidState indicates a field containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid field (NaN or Inf detected)")

	// ErrDimensionMismatch indicates a field whose length differs from the grid.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between field and grid")
)

// ConfigError reports which configuration value was rejected and why.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
