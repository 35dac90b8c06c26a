// Package source turns input files (PDFs and raster images) into documents
// whose pages can be appended to a combined output.
package source

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// Loader produces documents from input items.
type Loader struct {
	canvas Canvas
	conf   *model.Configuration
	logger *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithCanvas sets the page images are drawn onto. Defaults to Letter.
func WithCanvas(c Canvas) Option {
	return func(l *Loader) { l.canvas = c }
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{
		canvas: Letter,
		conf:   NewConfiguration(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads item and returns all of its pages, or an *Error and no pages.
func (l *Loader) Load(item Item) (*Document, error) {
	l.logger.Debug("Loading input", zap.Int("index", item.Index), zap.String("file", item.Path), zap.Stringer("kind", item.Kind))

	if item.Kind == KindUnknown {
		return nil, unreadable(item, errUnknownKind)
	}

	data, err := os.ReadFile(item.Path)
	if err != nil {
		return nil, unreadable(item, fmt.Errorf("failed to read file: %w", err))
	}

	switch item.Kind {
	case KindPDF:
		return l.loadPDF(item, data)
	default:
		return l.loadImage(item, data)
	}
}
