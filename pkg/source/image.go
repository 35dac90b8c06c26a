// File: pkg/source/image.go
package source

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // Register decoders; only the first frame of a GIF is used.
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

const imageName = "input"

// loadImage decodes data and renders it as a single page on the loader's
// canvas. Nothing is written to disk.
func (l *Loader) loadImage(item Item, data []byte) (*Document, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, unreadable(item, fmt.Errorf("failed to decode image: %w", err))
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, unreadable(item, errEmptyImage)
	}
	placement, err := ComputePlacement(bounds.Dx(), bounds.Dy(), l.canvas)
	if err != nil {
		return nil, renderFailed(item, err)
	}
	l.logger.Debug("Computed image placement",
		zap.String("file", item.Path),
		zap.Int("widthPx", bounds.Dx()),
		zap.Int("heightPx", bounds.Dy()),
		zap.Float64("x", placement.X),
		zap.Float64("y", placement.Y),
		zap.Float64("drawWidth", placement.Width),
		zap.Float64("drawHeight", placement.Height))

	var encoded bytes.Buffer
	if err := imaging.Encode(&encoded, flatten(img), imaging.PNG); err != nil {
		return nil, renderFailed(item, fmt.Errorf("failed to encode pixels: %w", err))
	}

	page, err := renderPage(encoded.Bytes(), placement, l.canvas)
	if err != nil {
		return nil, renderFailed(item, err)
	}

	// Read the page back so a broken render is caught here rather than at merge time.
	pages, err := readPages(page, l.conf)
	if err != nil {
		return nil, renderFailed(item, fmt.Errorf("rendered page is invalid: %w", err))
	}

	l.logger.Debug("Rendered image page",
		zap.String("file", item.Path),
		zap.Int("sizeBytes", len(page)))

	return &Document{Item: item, Pages: pages, data: page}, nil
}

// flatten composites img over an opaque white background, dropping alpha.
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	background := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

// renderPage produces a one-page PDF with the PNG in encoded drawn at p.
func renderPage(encoded []byte, p Placement, canvas Canvas) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: canvas.Width, Ht: canvas.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(encoded))
	// gofpdf measures y from the top edge.
	top := canvas.Height - p.Y - p.Height
	pdf.ImageOptions(imageName, p.X, top, p.Width, p.Height, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to write page: %w", err)
	}
	return out.Bytes(), nil
}
