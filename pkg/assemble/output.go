package assemble

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdfcombiner/pkg/source"
)

// outputDocument accumulates loaded documents for a single run. Page order is
// document order followed by each document's internal page order.
type outputDocument struct {
	destination string
	documents   []*source.Document
	pages       int
}

func (o *outputDocument) append(doc *source.Document) {
	o.documents = append(o.documents, doc)
	o.pages += doc.PageCount()
}

// serialize writes the combined PDF to w.
func serialize(docs []*source.Document, w io.Writer, conf *model.Configuration) error {
	if len(docs) == 1 {
		return api.Optimize(docs[0].Open(), w, conf)
	}
	readers := make([]io.ReadSeeker, len(docs))
	for i, doc := range docs {
		readers[i] = doc.Open()
	}
	return api.MergeRaw(readers, w, false, conf)
}
