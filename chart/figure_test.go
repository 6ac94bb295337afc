// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
	"pgregory.net/rapid"

	"github.com/pcomm/bwplot/bwfmt"
	"github.com/pcomm/bwplot/sweep"
)

var testPoint = sweep.Point{Test: "bw_dtype", BufferCount: 4, DataSize: 16, Stride: 32}

func testFigure() *Figure {
	f := NewFigure(testPoint)
	f.AddSeries("mpich", tab20c[4], &bwfmt.Measurements{MsgSize: []float64{1, 2}, Bandwidth: []float64{2000, 4000}})
	f.AddSeries("ompi", tab20c[0], &bwfmt.Measurements{MsgSize: []float64{1, 2, 4}, Bandwidth: []float64{1000, 3000, 5000}})
	return f
}

func TestAddSeries(t *testing.T) {
	f := NewFigure(testPoint)
	require.Equal(t, "bw_dtype_bcount4_dsize16_stride32", f.Name)

	m := &bwfmt.Measurements{MsgSize: []float64{1, 2}, Bandwidth: []float64{2000, 4000}}
	s := f.AddSeries("mpich", tab20c[4], m)
	require.Equal(t, []float64{1, 2}, s.MsgSize)
	require.Equal(t, []float64{2.0, 4.0}, s.Bandwidth)
	require.Equal(t, tab20c[4], s.Color)
	require.Len(t, f.Series, 1)

	// The measurements are not modified.
	require.Equal(t, []float64{2000, 4000}, m.Bandwidth)
}

func TestAddSeriesScaling(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 100).Draw(t, "n")
		m := &bwfmt.Measurements{}
		for i := 0; i < n; i++ {
			m.MsgSize = append(m.MsgSize, rapid.Float64Range(1, 1<<24).Draw(t, "size"))
			m.Bandwidth = append(m.Bandwidth, rapid.Float64Range(0, 1e12).Draw(t, "bw"))
		}
		s := NewFigure(testPoint).AddSeries("x", tab10[0], m)
		require.Len(t, s.Bandwidth, n)
		require.Equal(t, m.MsgSize, s.MsgSize)
		for i, bw := range m.Bandwidth {
			require.Equal(t, bw/1000, s.Bandwidth[i])
		}
	})
}

func TestPlot(t *testing.T) {
	f := testFigure()
	p, lines, err := f.Plot()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, tab20c[4], lines[0].LineStyle.Color)
	require.Equal(t, tab20c[0], lines[1].LineStyle.Color)
	require.Len(t, lines[1].XYs, 3)
	require.Equal(t, MsgSizeLabel, p.X.Label.Text)
	require.Equal(t, BandwidthLabel, p.Y.Label.Text)
	require.IsType(t, plot.LogScale{}, p.X.Scale)
	require.Equal(t, 1.0, p.X.Min)
	require.Equal(t, 4.0, p.X.Max)
	require.Equal(t, 5.0, p.Y.Max)
}

func TestPlotNonPositiveSizes(t *testing.T) {
	f := NewFigure(testPoint)
	f.AddSeries("mpich", tab20c[4], &bwfmt.Measurements{MsgSize: []float64{0, 1, 2}, Bandwidth: []float64{1, 2000, 4000}})
	_, lines, err := f.Plot()
	require.NoError(t, err)
	require.Len(t, lines[0].XYs, 2)
	require.Len(t, f.Series[0].Bandwidth, 3)

	f = NewFigure(testPoint)
	f.AddSeries("mpich", tab20c[4], &bwfmt.Measurements{MsgSize: []float64{0}, Bandwidth: []float64{1}})
	_, _, err = f.Plot()
	require.ErrorContains(t, err, "no positive message sizes")

	_, _, err = NewFigure(testPoint).Plot()
	require.ErrorContains(t, err, "no series")
}

func TestLegendColumns(t *testing.T) {
	f := testFigure()
	f.AddSeries("impi", tab10[2], &bwfmt.Measurements{MsgSize: []float64{1}, Bandwidth: []float64{1}})
	p, lines, err := f.Plot()
	require.NoError(t, err)

	require.Len(t, DefaultLegend.columns(p, f.Series, lines), 2)
	require.Len(t, LegendStyle{Columns: 1}.columns(p, f.Series, lines), 1)
	require.Len(t, LegendStyle{Columns: 0}.columns(p, f.Series, lines), 1)
	require.Len(t, LegendStyle{Columns: 5}.columns(p, f.Series, lines), 3)
}

// textCanvas records where strings are drawn and the colors of
// stroked paths.
type textCanvas struct {
	*vgsvg.Canvas
	color   color.Color
	text    map[string]vg.Point
	strokes map[color.Color]int
}

func newTextCanvas() *textCanvas {
	return &textCanvas{
		Canvas:  vgsvg.New(DefaultWidth, DefaultHeight),
		text:    make(map[string]vg.Point),
		strokes: make(map[color.Color]int),
	}
}

func (c *textCanvas) SetColor(col color.Color) {
	c.color = col
	c.Canvas.SetColor(col)
}

func (c *textCanvas) Stroke(p vg.Path) {
	c.strokes[c.color]++
	c.Canvas.Stroke(p)
}

func (c *textCanvas) FillString(f font.Face, pt vg.Point, s string) {
	c.text[s] = pt
	c.Canvas.FillString(f, pt, s)
}

func TestDrawLowerRight(t *testing.T) {
	f := testFigure()
	tc := newTextCanvas()
	dc := draw.New(tc)
	require.NoError(t, f.Draw(dc, DefaultLegend))

	require.NotZero(t, tc.strokes[plotter.DefaultGridLineStyle.Color], "grid lines")
	require.NotZero(t, tc.strokes[tab20c[4]])
	require.NotZero(t, tc.strokes[tab20c[0]])

	p, _, err := f.Plot()
	require.NoError(t, err)
	da := p.DataCanvas(dc)
	midX := (da.Min.X + da.Max.X) / 2
	midY := (da.Min.Y + da.Max.Y) / 2
	for _, tag := range []string{"mpich", "ompi"} {
		pt, ok := tc.text[tag]
		require.True(t, ok, tag)
		require.True(t, da.Contains(pt), "%s at %v outside %v", tag, pt, da.Rectangle)
		require.Greater(t, pt.X, midX, tag)
		require.Less(t, pt.Y, midY, tag)
	}
	// Two columns: the entries sit side by side on one row.
	require.Less(t, tc.text["mpich"].X, tc.text["ompi"].X)
	require.InDelta(t, float64(tc.text["mpich"].Y), float64(tc.text["ompi"].Y), 0.01)
}

func TestDrawAboveCenter(t *testing.T) {
	f := testFigure()
	tc := newTextCanvas()
	dc := draw.New(tc)
	legend := LegendStyle{Columns: 2, Placement: AboveCenter}
	require.NoError(t, f.Draw(dc, legend))

	p, lines, err := f.Plot()
	require.NoError(t, err)
	h := columnsHeight(dc, legend.columns(p, f.Series, lines)) + legendGap
	da := p.DataCanvas(draw.Crop(dc, 0, 0, 0, -h))
	for _, tag := range []string{"mpich", "ompi"} {
		pt, ok := tc.text[tag]
		require.True(t, ok, tag)
		require.Greater(t, pt.Y, da.Max.Y, tag)
		require.Greater(t, pt.X, da.Min.X, tag)
		require.Less(t, pt.X, da.Max.X, tag)
	}
}

func TestWriterTo(t *testing.T) {
	f := testFigure()
	for _, legend := range []LegendStyle{DefaultLegend, {Columns: 2, Placement: AboveCenter}} {
		for _, format := range []string{"svg", "png", "pdf", "tex"} {
			wt, err := f.WriterTo(DefaultWidth, DefaultHeight, format, legend)
			require.NoError(t, err, format)
			var buf bytes.Buffer
			_, err = wt.WriteTo(&buf)
			require.NoError(t, err, format)
			require.NotZero(t, buf.Len(), format)
			if format == "svg" || format == "tex" {
				require.Contains(t, buf.String(), "mpich", format)
				require.Contains(t, buf.String(), "ompi", format)
			}
		}
	}

	_, err := f.WriterTo(DefaultWidth, DefaultHeight, "bmp", DefaultLegend)
	require.True(t, errors.Is(err, ErrFormat))

	_, err = f.WriterTo(DefaultWidth, DefaultHeight, "svg", LegendStyle{Placement: Placement(7)})
	require.Error(t, err)
}

func TestSizeLabel(t *testing.T) {
	for v, want := range map[float64]string{1: "1", 10: "10", 100: "100", 1e3: "1k", 1e4: "10k", 1e6: "1M"} {
		require.Equal(t, want, sizeLabel(v))
	}
	ticks := sizeTicks{}.Ticks(1, 1e4)
	var labels []string
	for _, tk := range ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	require.Equal(t, []string{"1", "10", "100", "1k", "10k"}, labels)
}
