package source

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	sizeLetter    = gofpdf.SizeType{Wd: 612, Ht: 792}
	sizeA4        = gofpdf.SizeType{Wd: 595, Ht: 842}
	sizeLandscape = gofpdf.SizeType{Wd: 792, Ht: 612}
)

// writePDF creates a PDF at dir/name with one page per size.
func writePDF(t *testing.T, dir, name string, sizes ...gofpdf.SizeType) string {
	t.Helper()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: sizeLetter})
	pdf.SetFont("Helvetica", "", 12)
	for i, size := range sizes {
		pdf.AddPageFormat("P", size)
		pdf.Text(40, 40, fmt.Sprintf("%s page %d", name, i+1))
	}
	path := filepath.Join(dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

type encoder func(io.Writer, image.Image) error

// writeImage encodes a w x h gradient with a translucent region.
func writeImage(t *testing.T, dir, name string, w, h int, encode encoder) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(255)
			if x < w/2 {
				a = 128
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 90, A: a})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture %s: %v", name, err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("encode fixture %s: %v", name, err)
	}
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

var (
	encodePNG  encoder = func(w io.Writer, img image.Image) error { return png.Encode(w, img) }
	encodeJPEG encoder = func(w io.Writer, img image.Image) error { return jpeg.Encode(w, img, nil) }
	encodeGIF  encoder = func(w io.Writer, img image.Image) error { return gif.Encode(w, img, nil) }
	encodeBMP  encoder = func(w io.Writer, img image.Image) error { return bmp.Encode(w, opaque(img)) }
	encodeTIFF encoder = func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }
)

// opaque draws img over white for encoders limited to opaque pixels.
func opaque(img image.Image) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

func item(path string, index int) Item {
	return Item{Path: path, Kind: KindFromPath(path), Index: index}
}
