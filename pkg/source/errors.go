package source

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for a single input. Match them with errors.Is.
var (
	ErrUnreadable   = errors.New("unreadable input")
	ErrRenderFailed = errors.New("failed to render page")
)

var (
	errNoPages       = errors.New("document has no pages")
	errNoPDFHeader   = errors.New("missing %PDF- header")
	errEncrypted     = errors.New("document is encrypted")
	errUnknownKind   = errors.New("unrecognized file extension")
	errEmptyImage    = errors.New("image has no pixels")
	errMissingBounds = errors.New("page has no media box")
)

// Error is the failure of one input item. It contributes no pages.
type Error struct {
	Item Item  // The input that failed.
	Kind error // ErrUnreadable or ErrRenderFailed.
	Err  error // Underlying cause.
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind, e.Item.Path, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the error kind.
func (e *Error) Is(target error) bool { return target == e.Kind }

// Cause returns a short human-readable description of what went wrong.
func (e *Error) Cause() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}

func unreadable(item Item, err error) *Error {
	return &Error{Item: item, Kind: ErrUnreadable, Err: err}
}

func renderFailed(item Item, err error) *Error {
	return &Error{Item: item, Kind: ErrRenderFailed, Err: err}
}
