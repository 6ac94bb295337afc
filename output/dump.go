// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package output

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/perf/benchfmt"

	"github.com/pcomm/bwplot/chart"
)

// BandwidthUnit is the unit of plotted bandwidth values in dumps.
const BandwidthUnit = "MB/s"

// Benchfmt writes the plotted points of every figure in the Go
// benchmark format, one result per point:
//
//	run: <run id>
//	impl: mpich
//	Benchmarkbw_dtype/bcount=4/dsize=16/stride=32/msg=1024 1 2.5 MB/s
//
// Points with a non-positive message size are not plotted and are
// left out; "msg=-1" would parse as a GOMAXPROCS suffix.
// The output can be read by benchstat and benchfilter.
type Benchfmt struct {
	w     *benchfmt.Writer
	runID string
}

// NewBenchfmt returns a Benchfmt strategy writing to w.
func NewBenchfmt(w io.Writer, runID string) *Benchfmt {
	return &Benchfmt{w: benchfmt.NewWriter(w), runID: runID}
}

func (b *Benchfmt) Add(ctx context.Context, f *chart.Figure) error {
	for _, s := range f.Series {
		res := &benchfmt.Result{Iters: 1}
		if b.runID != "" {
			res.Config = append(res.Config, benchfmt.Config{Key: "run", Value: []byte(b.runID), File: true})
		}
		res.Config = append(res.Config, benchfmt.Config{Key: "impl", Value: []byte(s.Tag), File: true})
		for i := range s.MsgSize {
			if s.MsgSize[i] <= 0 {
				continue
			}
			res.Name = benchfmt.Name(f.Point.BenchName() + "/msg=" + formatFloat(s.MsgSize[i]))
			res.Values = []benchfmt.Value{{Value: s.Bandwidth[i], Unit: BandwidthUnit}}
			if err := b.w.Write(res); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Benchfmt) Finish(ctx context.Context) error { return nil }

// CSV writes the points of every figure as one table with columns
// figure, impl, msg_size and bandwidth. Each figure is flushed when
// added, so the rows of an aborted run are kept.
type CSV struct {
	w      *csv.Writer
	header bool
}

// NewCSV returns a CSV strategy writing to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

func (c *CSV) Add(ctx context.Context, f *chart.Figure) error {
	if !c.header {
		c.header = true
		if err := c.w.Write([]string{"figure", "impl", "msg_size", "bandwidth"}); err != nil {
			return err
		}
	}
	for _, s := range f.Series {
		for i := range s.MsgSize {
			row := []string{f.Name, s.Tag, formatFloat(s.MsgSize[i]), formatFloat(s.Bandwidth[i])}
			if err := c.w.Write(row); err != nil {
				return err
			}
		}
	}
	c.w.Flush()
	return c.w.Error()
}

func (c *CSV) Finish(ctx context.Context) error { return nil }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
