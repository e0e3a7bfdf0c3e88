// Package render draws Figures with gonum/plot and writes them as PNG files.
//
// A Figure is a plain description (panels, series, styles) so the dataset
// packages can build and test their charts without touching a canvas.
package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Default figure size and resolution, matching the 10x6 inch, 300 dpi charts
// the experiment reports use.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
	DefaultDPI    = 300
)

// Named colors used by the fixed-color series.
var (
	Red    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	Green  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	Blue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	Orange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
)

// Marker selects the glyph drawn at each data point.
type Marker int

const (
	NoMarker Marker = iota
	Circle
	Cross
	Square
	Diamond
	Triangle
)

// Series is one labeled curve. X and Y must have equal length; an empty
// series is allowed and is simply not drawn.
type Series struct {
	Label  string
	X, Y   []float64
	Dashed bool
	Marker Marker
	Color  color.Color // nil picks from the default palette by series index
	Width  vg.Length   // 0 means 2pt
}

// Panel is one set of axes.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	LogX   bool
	Series []Series
}

// Figure is one output image. Multiple panels are stacked vertically and
// share the image.
type Figure struct {
	Name   string // file name without extension
	Width  vg.Length
	Height vg.Length
	Panels []Panel
}

// FileName returns the PNG file name for f.
func (f *Figure) FileName() string { return f.Name + ".png" }

func (f *Figure) size() (vg.Length, vg.Length) {
	w, h := f.Width, f.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}
