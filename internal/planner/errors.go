package planner

import "fmt"

// ResolutionError reports that a profile's compilation unit or dependency
// target does not exist in the host project. It is fatal for the affected
// profile only.
type ResolutionError struct {
	Profile string
	Err     error
}

// Error implements the error interface for ResolutionError.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot plan profile %q: %v", e.Profile, e.Err)
}

// Unwrap exposes the underlying lookup failure.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
