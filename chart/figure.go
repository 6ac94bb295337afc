// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders bandwidth-versus-message-size figures.
//
// A Figure holds one line series per MPI implementation for a single
// sweep point. Bandwidth values are divided by BandwidthScale when a
// series is added; message sizes are plotted as read.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pcomm/bwplot/bwfmt"
	"github.com/pcomm/bwplot/sweep"
)

// BandwidthScale divides the raw bandwidth column before plotting.
//
// The unit of the raw column is not recorded by the harness; the
// factor is kept as is and the axis is labeled BandwidthLabel.
const BandwidthScale = 1e3

// Axis labels.
const (
	MsgSizeLabel   = "msg size [kB]"
	BandwidthLabel = "bandwidth [MB/s]"
)

// Default figure size, matching the common 6.4x4.8 inch screen figure.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

const lineWidth = 1.5

// A Series is the measurements of one implementation in a Figure.
type Series struct {
	Tag   string
	Color color.Color

	// MsgSize and Bandwidth are the plotted values, in file order.
	MsgSize   []float64
	Bandwidth []float64
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.MsgSize)
}

// XY implements plotter.XYer.
func (s *Series) XY(i int) (x, y float64) {
	return s.MsgSize[i], s.Bandwidth[i]
}

// A Figure compares the implementations at one sweep point.
type Figure struct {
	// Name identifies the figure. It is the sweep point's name.
	Name   string
	Point  sweep.Point
	Series []*Series
}

// NewFigure returns an empty figure for p.
func NewFigure(p sweep.Point) *Figure {
	return &Figure{Name: p.Name(), Point: p}
}

// AddSeries adds the measurements m of implementation tag, drawn in
// color c. The bandwidth column is divided by BandwidthScale.
func (f *Figure) AddSeries(tag string, c color.Color, m *bwfmt.Measurements) *Series {
	s := &Series{
		Tag:       tag,
		Color:     c,
		MsgSize:   append([]float64(nil), m.MsgSize...),
		Bandwidth: vec.Map(func(bw float64) float64 { return bw / BandwidthScale }, m.Bandwidth),
	}
	f.Series = append(f.Series, s)
	return s
}

// Plot builds the plot of f without its legend, and returns the
// lines in series order.
func (f *Figure) Plot() (*plot.Plot, []*plotter.Line, error) {
	if len(f.Series) == 0 {
		return nil, nil, fmt.Errorf("figure %s: no series", f.Name)
	}

	p := plot.New()
	p.X.Label.Text = MsgSizeLabel
	p.Y.Label.Text = BandwidthLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = sizeTicks{}
	p.Add(plotter.NewGrid())

	var lines []*plotter.Line
	for _, s := range f.Series {
		xys := positiveXYs(s)
		if len(xys) == 0 {
			return nil, nil, fmt.Errorf("figure %s: series %s: no positive message sizes to plot", f.Name, s.Tag)
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, nil, fmt.Errorf("figure %s: series %s: %w", f.Name, s.Tag, err)
		}
		l.LineStyle.Color = s.Color
		l.LineStyle.Width = vg.Points(lineWidth)
		p.Add(l)
		lines = append(lines, l)
	}
	return p, lines, nil
}

// positiveXYs returns the points of s that can be shown on a
// logarithmic x axis.
func positiveXYs(s *Series) plotter.XYs {
	xys := make(plotter.XYs, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		x, y := s.XY(i)
		if x > 0 {
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
	}
	return xys
}

// Draw draws f and its legend onto c.
func (f *Figure) Draw(c draw.Canvas, legend LegendStyle) error {
	p, lines, err := f.Plot()
	if err != nil {
		return err
	}
	cols := legend.columns(p, f.Series, lines)
	switch legend.Placement {
	case LowerRight:
		p.Draw(c)
		drawLowerRight(p.DataCanvas(c), cols)
	case AboveCenter:
		h := columnsHeight(c, cols) + legendGap
		body := draw.Crop(c, 0, 0, 0, -h)
		p.Draw(body)
		drawAboveCenter(c, p.DataCanvas(body), cols)
	default:
		return fmt.Errorf("unknown legend placement %d", legend.Placement)
	}
	return nil
}

// ErrFormat is returned by WriterTo for an unsupported image format.
var ErrFormat = errors.New("unsupported image format")

// WriterTo renders f in the given format ("png", "svg", "pdf", "eps",
// "tex", "jpg" or "tif") with size w by h.
func (f *Figure) WriterTo(w, h vg.Length, format string, legend LegendStyle) (io.WriterTo, error) {
	cw, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrFormat, format, err)
	}
	if err := f.Draw(draw.New(cw), legend); err != nil {
		return nil, err
	}
	return cw, nil
}
