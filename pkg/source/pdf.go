// File: pkg/source/pdf.go
package source

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// loadPDF parses data as a PDF and describes its pages. The bytes are kept as
// they are; pages are copied structurally when the output is assembled.
func (l *Loader) loadPDF(item Item, data []byte) (*Document, error) {
	if !hasPDFHeader(data) {
		return nil, unreadable(item, errNoPDFHeader)
	}

	pages, err := readPages(data, l.conf)
	if err != nil {
		return nil, unreadable(item, err)
	}

	l.logger.Debug("Parsed PDF",
		zap.String("file", item.Path),
		zap.Int("pages", len(pages)),
		zap.Int("sizeBytes", len(data)))

	return &Document{Item: item, Pages: pages, data: data}, nil
}

// readPages validates data and returns one Page per page in document order.
func readPages(data []byte, conf *model.Configuration) ([]Page, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, errEncrypted
		}
		return nil, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}
	if ctx.PageCount == 0 {
		return nil, errNoPages
	}

	pages := make([]Page, 0, ctx.PageCount)
	for nr := 1; nr <= ctx.PageCount; nr++ {
		_, _, inh, err := ctx.PageDict(nr, false)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", nr, err)
		}
		if inh == nil || inh.MediaBox == nil {
			return nil, fmt.Errorf("page %d: %w", nr, errMissingBounds)
		}
		w, h := inh.MediaBox.Width(), inh.MediaBox.Height()
		if inh.Rotate%180 != 0 {
			w, h = h, w
		}
		pages = append(pages, Page{Number: nr, Width: w, Height: h})
	}
	return pages, nil
}
