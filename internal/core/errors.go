// Package core holds the pure computations behind the dashboard: the chart
// series generator (package series) and the derived views (package views).
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only error the core computations return. It marks
// a precondition violation by the caller.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInput wraps ErrInvalidInput with a detail message.
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
