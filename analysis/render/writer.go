package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Writer renders figures into PNG files under Dir.
type Writer struct {
	Dir string
	DPI int
}

// NewWriter returns a Writer for dir. A non-positive dpi selects DefaultDPI.
func NewWriter(dir string, dpi int) *Writer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Writer{Dir: dir, DPI: dpi}
}

// Write renders f and saves it as Dir/<f.Name>.png, creating Dir if needed.
// The canvas and file are released before Write returns.
func (w *Writer) Write(f *Figure) (string, error) {
	if len(f.Panels) == 0 {
		return "", fmt.Errorf("figure %q has no panels", f.Name)
	}
	plots := make([][]*plot.Plot, len(f.Panels))
	for i := range f.Panels {
		pl, err := newPlot(&f.Panels[i])
		if err != nil {
			return "", fmt.Errorf("figure %q: %w", f.Name, err)
		}
		plots[i] = []*plot.Plot{pl}
	}

	width, height := f.size()
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(w.DPI))
	dc := draw.New(img)
	if len(plots) == 1 {
		plots[0][0].Draw(dc)
	} else {
		tiles := draw.Tiles{
			Rows:      len(plots),
			Cols:      1,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
			PadY:      vg.Millimeter * 6,
		}
		canvases := plot.Align(plots, tiles, dc)
		for i := range plots {
			plots[i][0].Draw(canvases[i][0])
		}
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir %s: %w", w.Dir, err)
	}
	path := filepath.Join(w.Dir, f.FileName())
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(out); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	logrus.Debugf("wrote %s", path)
	return path, nil
}

// WriteAll writes figures in order and returns the paths written. It stops
// at the first failure.
func (w *Writer) WriteAll(figs []Figure) ([]string, error) {
	paths := make([]string, 0, len(figs))
	for i := range figs {
		path, err := w.Write(&figs[i])
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
