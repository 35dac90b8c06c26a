package assemble

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"pdfcombiner/pkg/source"
)

var (
	sizeLetter    = gofpdf.SizeType{Wd: 612, Ht: 792}
	sizeA4        = gofpdf.SizeType{Wd: 595, Ht: 842}
	sizeLandscape = gofpdf.SizeType{Wd: 792, Ht: 612}
)

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

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
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

func items(t *testing.T, paths ...string) []source.Item {
	t.Helper()
	its, err := source.NewItems(paths)
	if err != nil {
		t.Fatalf("NewItems: %v", err)
	}
	return its
}

// pageSizes loads a written output and returns its page sizes in order.
func pageSizes(t *testing.T, path string) [][2]float64 {
	t.Helper()
	doc, err := source.NewLoader(nil).Load(source.Item{Path: path, Kind: source.KindPDF})
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	sizes := make([][2]float64, 0, doc.PageCount())
	for _, p := range doc.Pages {
		sizes = append(sizes, [2]float64{math.Round(p.Width), math.Round(p.Height)})
	}
	return sizes
}

func assertUnchanged(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(got) != want {
		t.Fatalf("%s was modified: %q", path, got)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temporary file left behind: %s", e.Name())
		}
	}
}

// countingSource wraps a loader and records the items it was asked for.
type countingSource struct {
	next  PageSource
	calls []int
}

func (c *countingSource) Load(item source.Item) (*source.Document, error) {
	c.calls = append(c.calls, item.Index)
	return c.next.Load(item)
}
