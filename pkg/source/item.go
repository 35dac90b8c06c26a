// File: pkg/source/item.go
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the declared type of an input file, inferred from its extension.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "PDF"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Extensions maps every recognized extension (lower case, with dot) to its kind.
var Extensions = map[string]Kind{
	".pdf":  KindPDF,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
	".bmp":  KindImage,
	".tiff": KindImage,
	".tif":  KindImage,
	".gif":  KindImage,
}

// KindFromPath infers the kind of a file from its extension, case-insensitively.
func KindFromPath(path string) Kind {
	return Extensions[strings.ToLower(filepath.Ext(path))]
}

// Supported reports whether path carries a recognized extension.
func Supported(path string) bool {
	return KindFromPath(path) != KindUnknown
}

// Item is one entry of the ordered work list.
type Item struct {
	Path  string // Absolute path of the input file.
	Kind  Kind   // Declared kind, inferred from the extension.
	Index int    // Position in the caller's list (0-based).
}

func (i Item) String() string {
	return fmt.Sprintf("#%d %s (%s)", i.Index, i.Path, i.Kind)
}

// NewItems builds the work list for paths, resolving each to an absolute path
// and keeping the caller's order.
func NewItems(paths []string) ([]Item, error) {
	items := make([]Item, 0, len(paths))
	for i, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %q: %w", p, err)
		}
		items = append(items, Item{Path: abs, Kind: KindFromPath(abs), Index: i})
	}
	return items, nil
}
