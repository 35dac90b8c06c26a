package assemble

import (
	"errors"
	"fmt"

	"pdfcombiner/pkg/source"
)

// Warning records one input that contributed no pages.
type Warning struct {
	Item source.Item
	Err  error
}

// Message describes the failure for display: which file, and why.
func (w Warning) Message() string {
	var cause string
	var srcErr *source.Error
	if errors.As(w.Err, &srcErr) {
		cause = srcErr.Cause()
	} else {
		cause = w.Err.Error()
	}
	return fmt.Sprintf("Could not process %s file %s: %s", w.Item.Kind, w.Item.Path, cause)
}

// Report summarizes a successful Combine call.
type Report struct {
	RunID        string    // Identifies the run in logs.
	Destination  string    // Path of the written file.
	Attempted    int       // Number of items processed.
	PagesWritten int       // Pages in the written file.
	Warnings     []Warning // Items that were skipped, in input order.
}

// Succeeded is the number of items that contributed pages.
func (r *Report) Succeeded() int { return r.Attempted - len(r.Warnings) }
