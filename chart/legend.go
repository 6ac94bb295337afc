// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Placement positions the legend of a figure.
type Placement int

const (
	// LowerRight puts the legend inside the axes, in the lower
	// right corner.
	LowerRight Placement = iota
	// AboveCenter puts the legend above the axes, horizontally
	// centered on them.
	AboveCenter
)

func (p Placement) String() string {
	switch p {
	case LowerRight:
		return "lower right"
	case AboveCenter:
		return "above center"
	}
	return "unknown"
}

// A LegendStyle describes the legend of a figure.
type LegendStyle struct {
	// Columns is the number of legend columns. Entries fill the
	// columns in order, top to bottom. Values below 1 mean 1.
	Columns   int
	Placement Placement
}

// DefaultLegend is the legend of displayed figures.
var DefaultLegend = LegendStyle{Columns: 2, Placement: LowerRight}

const (
	legendInset vg.Length = 5  // between the legend and the axes
	legendGap   vg.Length = 10 // between legend columns
)

// columns splits the legend entries of series into legend columns,
// each styled like p's legend.
func (s LegendStyle) columns(p *plot.Plot, series []*Series, lines []*plotter.Line) []plot.Legend {
	ncol := s.Columns
	if ncol < 1 {
		ncol = 1
	}
	if ncol > len(series) {
		ncol = len(series)
	}
	rows := (len(series) + ncol - 1) / ncol

	var cols []plot.Legend
	for start := 0; start < len(series); start += rows {
		end := min(start+rows, len(series))
		l := p.Legend
		for i := start; i < end; i++ {
			l.Add(series[i].Tag, lines[i])
		}
		cols = append(cols, l)
	}
	return cols
}

func columnsHeight(c draw.Canvas, cols []plot.Legend) vg.Length {
	var h vg.Length
	for i := range cols {
		h = max(h, cols[i].Rectangle(c).Size().Y)
	}
	return h
}

// drawLowerRight draws cols right to left from the lower right corner
// of the data canvas dc. Shorter columns are aligned on the top row.
func drawLowerRight(dc draw.Canvas, cols []plot.Legend) {
	h := columnsHeight(dc, cols)
	x := -legendInset
	for i := len(cols) - 1; i >= 0; i-- {
		l := &cols[i]
		l.Top = false
		l.Left = false
		size := l.Rectangle(dc).Size()
		l.XOffs = x
		l.YOffs = legendInset + h - size.Y
		l.Draw(dc)
		x -= size.X + legendGap
	}
}

// drawAboveCenter draws cols left to right along the top of c,
// centered over the data canvas dc.
func drawAboveCenter(c, dc draw.Canvas, cols []plot.Legend) {
	var w vg.Length
	for i := range cols {
		if i > 0 {
			w += legendGap
		}
		w += cols[i].Rectangle(c).Size().X
	}
	x := (dc.Min.X+dc.Max.X)/2 - w/2
	for i := range cols {
		l := &cols[i]
		l.Top = true
		l.Left = true
		l.XOffs = x - c.Min.X
		l.YOffs = 0
		l.Draw(c)
		x += l.Rectangle(c).Size().X + legendGap
	}
}
