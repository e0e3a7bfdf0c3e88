package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// small keeps test renders fast.
func small(f Figure) *Figure {
	f.Width, f.Height = 4*vg.Inch, 3*vg.Inch
	return &f
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.True(t, bytes.Equal(pngMagic, data[:len(pngMagic)]), "%s is not a PNG", path)
}

func actualVsTheory() Panel {
	return Panel{
		Title: "Phases vs Record Count", XLabel: "Record Count", YLabel: "Number of Phases",
		Series: []Series{
			{Label: "Actual", X: []float64{100, 1000, 10000}, Y: []float64{1, 2, 3}, Marker: Circle},
			{Label: "Theoretical", X: []float64{100, 1000, 10000}, Y: []float64{0, 2, 3}, Dashed: true, Marker: Cross},
		},
	}
}

func TestWriter_Write_CreatesDirAndPNG(t *testing.T) {
	// GIVEN an output dir that does not exist yet
	dir := filepath.Join(t.TempDir(), "charts", "nested")
	w := NewWriter(dir, 72)

	// WHEN a single-panel figure is written
	path, err := w.Write(small(Figure{Name: "phases_vs_records_buffer_4", Panels: []Panel{actualVsTheory()}}))
	require.NoError(t, err)

	// THEN the file is a PNG named after the figure
	assert.Equal(t, filepath.Join(dir, "phases_vs_records_buffer_4.png"), path)
	assertPNG(t, path)
}

func TestWriter_Write_LogAxisAndAllMarkers(t *testing.T) {
	p := actualVsTheory()
	p.LogX = true
	p.Series = append(p.Series,
		Series{Label: "sq", X: []float64{10, 20}, Y: []float64{1, 1}, Marker: Square, Color: Orange},
		Series{Label: "dia", X: []float64{10, 20}, Y: []float64{2, 2}, Marker: Diamond, Color: Red},
		Series{Label: "tri", X: []float64{10, 20}, Y: []float64{3, 3}, Marker: Triangle, Color: Green, Width: vg.Points(3)},
	)
	path, err := NewWriter(t.TempDir(), 72).Write(small(Figure{Name: "log", Panels: []Panel{p}}))
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestWriter_Write_EmptySeries_DoesNotFail(t *testing.T) {
	// GIVEN a log-axis panel whose series have no points
	p := Panel{Title: "empty", LogX: true, Series: []Series{{Label: "Actual"}, {Label: "Theoretical", Dashed: true}}}

	// WHEN it is rendered
	path, err := NewWriter(t.TempDir(), 72).Write(small(Figure{Name: "empty", Panels: []Panel{p}}))

	// THEN an (empty) chart is still produced
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestWriter_Write_LogAxisSinglePoint(t *testing.T) {
	p := Panel{LogX: true, Series: []Series{{Label: "one", X: []float64{1}, Y: []float64{0}, Marker: Circle}}}
	path, err := NewWriter(t.TempDir(), 72).Write(small(Figure{Name: "single", Panels: []Panel{p}}))
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestWriter_Write_LogAxisDropsNonPositiveX(t *testing.T) {
	s := Series{X: []float64{0, -5, 10, 100}, Y: []float64{1, 2, 3, 4}}
	xys := points(&s, true)
	require.Len(t, xys, 2)
	assert.Equal(t, 10.0, xys[0].X)
	assert.Len(t, points(&s, false), 4)
}

func TestWriter_Write_StackedPanels(t *testing.T) {
	top, bottom := actualVsTheory(), actualVsTheory()
	top.LogX, bottom.LogX = true, true
	bottom.YLabel = "Total Disk Operations"

	path, err := NewWriter(t.TempDir(), 72).Write(&Figure{
		Name: "combined_comparison", Width: 5 * vg.Inch, Height: 5 * vg.Inch,
		Panels: []Panel{top, bottom},
	})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestWriter_Write_NoPanels(t *testing.T) {
	_, err := NewWriter(t.TempDir(), 72).Write(&Figure{Name: "none"})
	assert.Error(t, err)
}

func TestWriter_Write_MismatchedSeries(t *testing.T) {
	p := Panel{Series: []Series{{Label: "bad", X: []float64{1, 2}, Y: []float64{1}}}}
	_, err := NewWriter(t.TempDir(), 72).Write(small(Figure{Name: "bad", Panels: []Panel{p}}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestWriter_Write_NaNIsAnError(t *testing.T) {
	dir := t.TempDir()
	p := Panel{Series: []Series{{Label: "nan", X: []float64{1, 2}, Y: []float64{1, math.NaN()}}}}
	_, err := NewWriter(dir, 72).Write(small(Figure{Name: "nan", Panels: []Panel{p}}))
	require.Error(t, err)

	// AND nothing was written
	_, statErr := os.Stat(filepath.Join(dir, "nan.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_WriteAll_ReturnsPathsInOrder(t *testing.T) {
	dir := t.TempDir()
	figs := []Figure{
		*small(Figure{Name: "a", Panels: []Panel{actualVsTheory()}}),
		*small(Figure{Name: "b", Panels: []Panel{actualVsTheory()}}),
	}
	paths, err := NewWriter(dir, 72).WriteAll(figs)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}, paths)
}

func TestNewWriter_DefaultDPI(t *testing.T) {
	assert.Equal(t, DefaultDPI, NewWriter("x", 0).DPI)
}
