package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	gridColor     = color.Gray{Y: 215}
	defaultWidth  = vg.Points(2)
	markerRadius  = vg.Points(4)
	dashPattern   = []vg.Length{vg.Points(6), vg.Points(3)}
	tickLabelTilt = math.Pi / 4
)

// newPlot builds a gonum plot for one panel.
func newPlot(p *Panel) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel

	pl.X.Tick.Label.Rotation = tickLabelTilt
	pl.X.Tick.Label.XAlign = draw.XRight
	pl.X.Tick.Label.YAlign = draw.YCenter

	pl.Legend.Top = true
	pl.Legend.Left = true
	pl.Legend.Padding = vg.Millimeter

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	pl.Add(grid)

	var xs []float64
	for i := range p.Series {
		s := &p.Series[i]
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("series %q: %d x values, %d y values", s.Label, len(s.X), len(s.Y))
		}
		xys := points(s, p.LogX)
		if len(xys) == 0 {
			logrus.Debugf("panel %q: series %q has no points, skipping", p.Title, s.Label)
			continue
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		c := s.Color
		if c == nil {
			c = plotutil.Color(i)
		}
		line.LineStyle.Color = c
		line.LineStyle.Width = defaultWidth
		if s.Width > 0 {
			line.LineStyle.Width = s.Width
		}
		if s.Dashed {
			line.LineStyle.Dashes = dashPattern
		}
		pl.Add(line)
		thumbs := []plot.Thumbnailer{line}

		if glyph := s.Marker.glyph(); glyph != nil {
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Label, err)
			}
			sc.GlyphStyle.Shape = glyph
			sc.GlyphStyle.Color = c
			sc.GlyphStyle.Radius = markerRadius
			pl.Add(sc)
			thumbs = append(thumbs, sc)
		}
		pl.Legend.Add(s.Label, thumbs...)

		for _, xy := range xys {
			xs = append(xs, xy.X)
		}
	}

	if p.LogX {
		useLogX(pl, xs)
	}
	return pl, nil
}

// points converts a series to plotter.XYs. A log axis cannot show x <= 0, so
// those points are dropped there.
func points(s *Series, logX bool) plotter.XYs {
	xys := make(plotter.XYs, 0, len(s.X))
	for i, x := range s.X {
		if logX && x <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: s.Y[i]})
	}
	return xys
}

// useLogX switches the x axis to log10 when the data allows it. Without any
// points the axis stays linear; a single distinct x gets a decade of margin
// on each side.
func useLogX(pl *plot.Plot, xs []float64) {
	if len(xs) == 0 {
		return
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		lo, hi = lo/10, hi*10
	}
	pl.X.Scale = plot.LogScale{}
	pl.X.Tick.Marker = plot.LogTicks{Prec: -1}
	pl.X.Min, pl.X.Max = lo, hi
}

func (m Marker) glyph() draw.GlyphDrawer {
	switch m {
	case Circle:
		return draw.CircleGlyph{}
	case Cross:
		return draw.CrossGlyph{}
	case Square:
		return draw.SquareGlyph{}
	case Diamond:
		return diamondGlyph{}
	case Triangle:
		return draw.TriangleGlyph{}
	default:
		return nil
	}
}

// diamondGlyph is a filled square rotated by 45 degrees.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}
