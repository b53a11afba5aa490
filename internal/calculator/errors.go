package calculator

import (
	"errors"
	"fmt"
)

// InsufficientDataError reports a bar series too short for an indicator
// computation.
type InsufficientDataError struct {
	Symbol   string
	Required int
	Actual   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: need %d bars, got %d", e.Symbol, e.Required, e.Actual)
}

// IsInsufficientData reports whether any error in the chain is an
// InsufficientDataError.
func IsInsufficientData(err error) bool {
	var target *InsufficientDataError
	return errors.As(err, &target)
}
