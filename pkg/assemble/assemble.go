// Package assemble combines the pages of an ordered list of inputs into a
// single PDF file.
package assemble

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"pdfcombiner/pkg/source"
)

// PageSource loads the pages of one input item.
type PageSource interface {
	Load(item source.Item) (*source.Document, error)
}

// Assembler runs combine operations. It holds no per-run state.
type Assembler struct {
	source    PageSource
	logger    *zap.Logger
	overwrite bool
	serialize func(docs []*source.Document, w io.Writer) error
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithOverwrite allows Combine to replace an existing destination file. The
// caller is expected to have confirmed this with the user.
func WithOverwrite(overwrite bool) Option {
	return func(a *Assembler) { a.overwrite = overwrite }
}

// WithSource replaces the default source.Loader.
func WithSource(src PageSource) Option {
	return func(a *Assembler) { a.source = src }
}

// New creates an Assembler. A nil logger disables logging.
func New(logger *zap.Logger, opts ...Option) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Assembler{logger: logger}
	for _, opt := range opts {
		opt(a)
	}
	if a.source == nil {
		a.source = source.NewLoader(logger)
	}
	if a.serialize == nil {
		a.serialize = func(docs []*source.Document, w io.Writer) error {
			return serialize(docs, w, source.NewConfiguration())
		}
	}
	return a
}

// Combine loads items strictly in order and writes all their pages to
// destination. Items that fail to load are reported as warnings and skipped.
// If no page was produced, or the file cannot be written, an *Error is
// returned and destination is unchanged.
func (a *Assembler) Combine(items []source.Item, destination string) (*Report, error) {
	startTime := time.Now()
	runID := ulid.Make().String()
	logger := a.logger.With(zap.String("runID", runID))
	logger.Info("Starting combine", zap.Int("items", len(items)), zap.String("destination", destination))

	if err := a.checkDestination(destination); err != nil {
		logger.Error("Destination rejected", zap.String("destination", destination), zap.Error(err))
		return nil, err
	}

	out := &outputDocument{destination: destination}
	report := &Report{RunID: runID, Destination: destination, Attempted: len(items)}

	for _, item := range items {
		doc, err := a.source.Load(item)
		if err != nil {
			logger.Warn("Skipping input",
				zap.Int("index", item.Index),
				zap.String("file", item.Path),
				zap.Error(err))
			report.Warnings = append(report.Warnings, Warning{Item: item, Err: err})
			continue
		}
		out.append(doc)
		logger.Debug("Appended input",
			zap.Int("index", item.Index),
			zap.String("file", item.Path),
			zap.Int("pages", doc.PageCount()),
			zap.Int("sizeBytes", doc.Size()),
			zap.Int("totalPages", out.pages))
	}

	if out.pages == 0 {
		logger.Error("No pages to write", zap.Int("failed", len(report.Warnings)))
		return nil, &Error{Kind: ErrNothingToCombine, Destination: destination, Warnings: report.Warnings}
	}

	if err := writeAtomic(destination, func(w io.Writer) error {
		return a.serialize(out.documents, w)
	}); err != nil {
		logger.Error("Failed to write output", zap.String("destination", destination), zap.Error(err))
		return nil, &Error{Kind: ErrWriteFailed, Destination: destination, Err: err, Warnings: report.Warnings}
	}

	report.PagesWritten = out.pages
	logger.Info("Combine completed",
		zap.String("destination", destination),
		zap.Int("pages", report.PagesWritten),
		zap.Int("warnings", len(report.Warnings)),
		zap.Duration("elapsed", time.Since(startTime)))
	return report, nil
}

// checkDestination refuses to replace an existing file unless overwriting
// was allowed, and rejects destinations that could never be written.
func (a *Assembler) checkDestination(destination string) error {
	info, err := os.Stat(destination)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return &Error{Kind: ErrWriteFailed, Destination: destination, Err: err}
	case info.IsDir():
		return &Error{Kind: ErrWriteFailed, Destination: destination, Err: errors.New("destination is a directory")}
	case !a.overwrite:
		return &Error{Kind: ErrDestinationExists, Destination: destination}
	}
	return nil
}
