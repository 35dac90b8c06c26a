// File: pkg/source/sniff.go
package source

import "bytes"

// headerWindow is how far into a file the PDF header may appear. Some writers
// prepend junk before it and readers tolerate that within the first kilobyte.
const headerWindow = 1024

var pdfMagic = []byte("%PDF-")

// hasPDFHeader checks the first bytes of data for the PDF file signature.
func hasPDFHeader(data []byte) bool {
	return bytes.Contains(data[:min(len(data), headerWindow)], pdfMagic)
}
