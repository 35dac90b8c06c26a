package source

import "fmt"

// Canvas is the page an image is drawn onto, in PDF points.
type Canvas struct {
	Width  float64
	Height float64
	Margin float64 // Reserved on every side.
}

// Letter is a US-Letter portrait page with 50pt reserved on each side,
// leaving a 512x692 drawable area.
var Letter = Canvas{Width: 612, Height: 792, Margin: 50}

// MaxWidth is the widest an image may be drawn.
func (c Canvas) MaxWidth() float64 { return c.Width - 2*c.Margin }

// MaxHeight is the tallest an image may be drawn.
func (c Canvas) MaxHeight() float64 { return c.Height - 2*c.Margin }

// Placement is the rectangle an image occupies on its canvas. X and Y are the
// lower-left corner in PDF user space (origin at the bottom-left).
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ComputePlacement fits an image of the given pixel size into the drawable
// area of canvas, preserving its aspect ratio, and centers it.
func ComputePlacement(imgWidth, imgHeight int, canvas Canvas) (Placement, error) {
	if imgWidth <= 0 || imgHeight <= 0 {
		return Placement{}, fmt.Errorf("%w: %dx%d", errEmptyImage, imgWidth, imgHeight)
	}
	maxWidth, maxHeight := canvas.MaxWidth(), canvas.MaxHeight()
	if maxWidth <= 0 || maxHeight <= 0 {
		return Placement{}, fmt.Errorf("canvas %gx%g leaves no drawable area with margin %g",
			canvas.Width, canvas.Height, canvas.Margin)
	}

	imgAspect := float64(imgWidth) / float64(imgHeight)
	maxAspect := maxWidth / maxHeight

	var p Placement
	if imgAspect > maxAspect {
		p.Width = maxWidth
		p.Height = p.Width / imgAspect
	} else {
		p.Height = maxHeight
		p.Width = p.Height * imgAspect
	}
	p.X = (canvas.Width - p.Width) / 2
	p.Y = (canvas.Height - p.Height) / 2
	return p, nil
}
