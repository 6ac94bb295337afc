// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver runs a bandwidth sweep: it walks the sweep grid,
// loads the measurements of every implementation at each point, and
// hands one figure per point to an output strategy.
package driver

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pcomm/bwplot/bwfmt"
	"github.com/pcomm/bwplot/chart"
	"github.com/pcomm/bwplot/output"
	"github.com/pcomm/bwplot/sweep"
)

// A Driver runs one sweep.
type Driver struct {
	Layout bwfmt.Layout
	Grid   sweep.Grid
	// Filter, if non-nil, restricts the sweep points.
	Filter *sweep.Filter
	// Tags lists the implementations in display order.
	Tags    []string
	Palette chart.Palette
	Output  output.Strategy

	Log     *zap.Logger // may be nil
	Metrics *Metrics    // may be nil
}

// Run produces the figures of the sweep in grid order and finishes the
// output strategy.
//
// Any error stops the run at once: the figure being built and all
// later ones are never produced, and the output is not finished.
// Run returns the number of figures handed to the output.
func (d *Driver) Run(ctx context.Context) (int, error) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	n := 0
	for p := range d.Grid.All() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		ok, err := d.Filter.Match(p)
		if err != nil {
			return n, fmt.Errorf("filtering %s: %w", p, err)
		}
		if !ok {
			log.Debug("skipping", zap.String("figure", p.Name()))
			continue
		}

		fig, err := d.figure(log, p)
		if err != nil {
			return n, err
		}
		// Outputs may draw lazily; drawing errors must still stop the run.
		if _, _, err := fig.Plot(); err != nil {
			return n, err
		}
		if err := d.Output.Add(ctx, fig); err != nil {
			return n, err
		}
		d.Metrics.figure()
		log.Info("figure", zap.String("name", fig.Name), zap.Int("series", len(fig.Series)))
		n++
	}
	return n, d.Output.Finish(ctx)
}

func (d *Driver) figure(log *zap.Logger, p sweep.Point) (*chart.Figure, error) {
	fig := chart.NewFigure(p)
	for _, tag := range d.Tags {
		c, err := d.Palette.Color(tag)
		if err != nil {
			return nil, err
		}
		log.Info("opening", zap.String("file", d.Layout.Path(tag, p)))
		m, err := d.Layout.Load(tag, p)
		if err != nil {
			return nil, err
		}
		d.Metrics.file(m.Len())
		fig.AddSeries(tag, c, m)
	}
	return fig, nil
}
