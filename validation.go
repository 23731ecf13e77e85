package planner

import "fmt"

// InvalidInputError reports a planning parameter that fails one of the
// engine's preconditions. Field names the offending parameter so the caller
// can re-prompt for it.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidInput(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// checkHorizon validates the planning horizon shared by all simulators and
// solvers.
func checkHorizon(years int) error {
	if years <= 0 {
		return invalidInput("years", "must be positive, got %d", years)
	}
	return nil
}

// checkRates validates the return and tax assumptions of the goal solvers.
func checkRates(annualReturn, taxRate Percent) error {
	if annualReturn < 0 {
		return invalidInput("annual return", "must not be negative, got %s", annualReturn)
	}
	if taxRate < 0 || taxRate > 100 {
		return invalidInput("tax rate", "must be between 0%% and 100%%, got %s", taxRate)
	}
	return nil
}
