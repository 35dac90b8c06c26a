package assemble

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Combine. Match them with errors.Is.
var (
	ErrNothingToCombine  = errors.New("nothing to combine")
	ErrWriteFailed       = errors.New("failed to write output")
	ErrDestinationExists = errors.New("destination already exists")
)

// Error is a fatal failure of one Combine call. When it is returned the
// destination is exactly as it was before the call.
type Error struct {
	Kind        error
	Destination string
	Err         error
	Warnings    []Warning // Inputs skipped before the failure, if any were loaded.
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Destination)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Destination, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }
