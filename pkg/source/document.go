package source

import (
	"bytes"
	"io"
)

// Page is one finished page of a loaded document, ready to be appended to an
// output document.
type Page struct {
	Number int     // 1-based position inside its document.
	Width  float64 // Points, as displayed (rotation applied).
	Height float64
}

// Document is the result of loading one input: a self-contained PDF whose
// pages, in order, are the contribution of that input.
type Document struct {
	Item  Item
	Pages []Page
	data  []byte
}

// PageCount returns the number of pages the document contributes.
func (d *Document) PageCount() int { return len(d.Pages) }

// Open returns a fresh reader over the document's PDF bytes.
func (d *Document) Open() io.ReadSeeker { return bytes.NewReader(d.data) }

// Size is the length of the document's PDF bytes.
func (d *Document) Size() int { return len(d.data) }
