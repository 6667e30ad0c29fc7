package models

import "fmt"

// InvalidArgumentError is returned when a search request cannot be built from user input.
// No search is attempted when this error is returned.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RootUnavailableError is returned when a root path cannot be searched at all.
// It is informational: the root contributes no results and sibling roots continue.
type RootUnavailableError struct {
	Root  string
	Cause error
}

func (e *RootUnavailableError) Error() string {
	return fmt.Sprintf("root %s unavailable: %v", e.Root, e.Cause)
}

func (e *RootUnavailableError) Unwrap() error { return e.Cause }

// RootError pairs a root with the reason it produced no results.
type RootError struct {
	Root string
	Err  error
}
